package flatfile

import (
	"fmt"
	"strings"

	"worklog/internal/domain"
)

// SummaryText renders the whole store as the plain-text summary: a
// company title line, then per date (newest first) a dotted-date header
// and one numbered line per record in sequence order, with a blank line
// between date groups. Numbering restarts at 1 per date from list
// position, not from the stored sequence numbers.
func SummaryText(records []domain.LogRecord, company string) string {
	var b strings.Builder
	b.WriteString(company)
	b.WriteString("工作日志汇总\n\n")

	for _, date := range domain.DatesDescending(records) {
		b.WriteString(dotted(date))
		b.WriteByte('\n')
		for i, r := range domain.RecordsForDate(records, date) {
			fmt.Fprintf(&b, "%d.%s；\n", i+1, r.Content)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DayClipboardText renders one date for the clipboard: the dotted date
// glued to the company name, then numbered lines separated by ；, with
// the final line closed by 。 instead.
func DayClipboardText(records []domain.LogRecord, date, company string) string {
	day := domain.RecordsForDate(records, date)
	if len(day) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(dotted(date))
	b.WriteString(company)
	b.WriteByte('\n')
	for i, r := range day {
		if i == len(day)-1 {
			fmt.Fprintf(&b, "%d.%s。", i+1, r.Content)
		} else {
			fmt.Fprintf(&b, "%d.%s；\n", i+1, r.Content)
		}
	}
	return b.String()
}

// RecordClipboardText renders a single record as "{seq}.{content}".
func RecordClipboardText(r domain.LogRecord) string {
	return fmt.Sprintf("%d.%s", r.Seq(), r.Content)
}

func dotted(date string) string {
	return strings.ReplaceAll(date, "-", ".")
}
