// Package flatfile implements the flat-text exchange formats: the CSV
// export/import contract, the plain-text summary, and the clipboard
// snippets. It knows nothing about persistence or presentation.
package flatfile

import (
	"strings"

	"worklog/internal/application"
	"worklog/internal/domain"
)

// CSVHeader is the fixed export header: date, time, content, category, tags.
const CSVHeader = "日期,时间,内容,类别,标签"

// MarshalCSV renders records in the store's natural iteration order.
// Content and the comma-joined tag list are double-quote wrapped with
// internal quotes doubled; date, time, and category are written bare.
func MarshalCSV(records []domain.LogRecord) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(r.Date)
		b.WriteByte(',')
		b.WriteString(r.Time)
		b.WriteByte(',')
		b.WriteString(quote(r.Content))
		b.WriteByte(',')
		b.WriteString(r.Category)
		b.WriteByte(',')
		b.WriteString(quote(strings.Join(r.Tags, ", ")))
	}
	return b.String()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ParseResult reports how much of a CSV text was usable.
type ParseResult struct {
	Rows    []application.ImportRow
	Total   int // data lines seen (header and blank lines excluded)
	Skipped int // lines dropped for having fewer than 4 populated cells
}

// ParseCSV parses an exported CSV text. The first non-blank line is
// always treated as the header and skipped. Malformed rows are skipped
// and counted, never fatal to the batch.
func ParseCSV(text string) ParseResult {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return ParseResult{}
	}

	result := ParseResult{Total: len(lines) - 1}
	for _, line := range lines[1:] {
		cells := parseLine(line)
		if populated(cells) < 4 {
			result.Skipped++
			continue
		}
		row := application.ImportRow{
			Date:     cells[0],
			Time:     cells[1],
			Content:  cells[2],
			Category: cells[3],
		}
		if len(cells) > 4 && cells[4] != "" {
			row.Tags = domain.ParseTags(cells[4])
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

// parseLine splits one CSV line on commas with quote awareness: a quote
// toggles the in-quotes state, a doubled quote inside quotes emits one
// literal quote, and commas inside quotes do not split. Cells come back
// trimmed.
func parseLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}

// populated counts cells that are non-empty, matching the import rule
// that a row needs at least 4 populated fields.
func populated(cells []string) int {
	count := 0
	for _, cell := range cells {
		if cell != "" {
			count++
		}
	}
	return count
}
