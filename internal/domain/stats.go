package domain

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRange reports a yearly aggregation with a missing or inverted
// year range.
var ErrInvalidRange = errors.New("invalid year range")

// Period selects the trailing window for category and frequency stats.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Overview is the dashboard summary: counts for today, the current
// month, the current year, and the whole store.
type Overview struct {
	Today int
	Month int
	Year  int
	Total int
}

// OverviewCounts computes the dashboard summary relative to now.
func OverviewCounts(records []LogRecord, now time.Time) Overview {
	today := now.Format(DateLayout)
	month := now.Format("2006-01")
	year := now.Format("2006")

	o := Overview{Total: len(records)}
	for _, r := range records {
		if r.Date == today {
			o.Today++
		}
		if strings.HasPrefix(r.Date, month) {
			o.Month++
		}
		if strings.HasPrefix(r.Date, year) {
			o.Year++
		}
	}
	return o
}

// CategoryCount is one category bucket with its share of the period
// total, rounded to the nearest integer percent.
type CategoryCount struct {
	Category   string
	Count      int
	Percentage int
}

// DailyReport summarizes one date: total records and the category
// distribution in first-seen order.
type DailyReport struct {
	Date       string
	Total      int
	Categories []CategoryCount
}

// DailyStats counts the records of one date grouped by category.
func DailyStats(records []LogRecord, date string) DailyReport {
	day := RecordsForDate(records, date)
	return DailyReport{
		Date:       date,
		Total:      len(day),
		Categories: categoryCounts(day),
	}
}

// MonthlyReport holds one bucket per month of a year plus the year total.
type MonthlyReport struct {
	Year   int
	Total  int
	Months [12]int
}

// MonthlyStats counts records per month of the given year by date-prefix
// match. Records with unparsable month digits are ignored.
func MonthlyStats(records []LogRecord, year int) MonthlyReport {
	report := MonthlyReport{Year: year}
	prefix := strconv.Itoa(year)
	for _, r := range records {
		if !strings.HasPrefix(r.Date, prefix) || len(r.Date) < 7 {
			continue
		}
		month, err := strconv.Atoi(r.Date[5:7])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		report.Months[month-1]++
		report.Total++
	}
	return report
}

// YearCount is one bucket of a yearly range aggregation.
type YearCount struct {
	Year  int
	Count int
}

// YearlyReport holds one bucket per year of an inclusive range.
type YearlyReport struct {
	Total int
	Years []YearCount
}

// YearlyStats counts records per year over [startYear, endYear]. Both
// bounds must be positive and startYear must not exceed endYear.
func YearlyStats(records []LogRecord, startYear, endYear int) (YearlyReport, error) {
	if startYear <= 0 || endYear <= 0 || startYear > endYear {
		return YearlyReport{}, ErrInvalidRange
	}

	counts := make(map[int]int)
	total := 0
	for _, r := range records {
		if len(r.Date) < 4 {
			continue
		}
		year, err := strconv.Atoi(r.Date[:4])
		if err != nil || year < startYear || year > endYear {
			continue
		}
		counts[year]++
		total++
	}

	report := YearlyReport{Total: total}
	for year := startYear; year <= endYear; year++ {
		report.Years = append(report.Years, YearCount{Year: year, Count: counts[year]})
	}
	return report, nil
}

// CategoryReport is the category distribution over a period.
type CategoryReport struct {
	Period     Period
	Total      int
	Categories []CategoryCount
}

// CategoryStats groups the period's records by category. The month
// period means the current calendar month (date-prefix match).
func CategoryStats(records []LogRecord, p Period, now time.Time) CategoryReport {
	period := recordsInPeriod(records, p, now, false)
	return CategoryReport{
		Period:     p,
		Total:      len(period),
		Categories: categoryCounts(period),
	}
}

// FrequencyLimit caps the frequency ranking length.
const FrequencyLimit = 20

// FrequencyEntry is one ranked content string.
type FrequencyEntry struct {
	Rank       int
	Content    string
	Count      int
	Percentage int
}

// FrequencyReport is the content-frequency ranking over a period.
// Distinct is the number of unique content strings before the cap.
type FrequencyReport struct {
	Period   Period
	Total    int
	Distinct int
	Entries  []FrequencyEntry
}

// FrequencyStats ranks exact trimmed content strings by occurrence count
// over the period, descending, ties in first-seen order, capped at
// FrequencyLimit. Unlike CategoryStats, the month period here means the
// trailing 30 days.
func FrequencyStats(records []LogRecord, p Period, now time.Time) FrequencyReport {
	period := recordsInPeriod(records, p, now, true)

	counts := make(map[string]int)
	var order []string
	for _, r := range period {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		if counts[content] == 0 {
			order = append(order, content)
		}
		counts[content]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	report := FrequencyReport{Period: p, Total: len(period), Distinct: len(order)}
	for i, content := range order {
		if i == FrequencyLimit {
			break
		}
		report.Entries = append(report.Entries, FrequencyEntry{
			Rank:       i + 1,
			Content:    content,
			Count:      counts[content],
			Percentage: percentage(counts[content], len(period)),
		})
	}
	return report
}

// recordsInPeriod filters records to the trailing window ending at now.
// trailingMonth selects the 30-day reading of the month period used by
// the frequency ranking; otherwise month is a calendar-month prefix.
func recordsInPeriod(records []LogRecord, p Period, now time.Time, trailingMonth bool) []LogRecord {
	today := now.Format(DateLayout)

	matches := func(date string) bool { return true }
	switch p {
	case PeriodToday:
		matches = func(date string) bool { return date == today }
	case PeriodWeek:
		weekAgo := now.AddDate(0, 0, -7).Format(DateLayout)
		matches = func(date string) bool { return date >= weekAgo }
	case PeriodMonth:
		if trailingMonth {
			monthAgo := now.AddDate(0, 0, -30).Format(DateLayout)
			matches = func(date string) bool { return date >= monthAgo }
		} else {
			month := now.Format("2006-01")
			matches = func(date string) bool { return strings.HasPrefix(date, month) }
		}
	case PeriodYear:
		year := now.Format("2006")
		matches = func(date string) bool { return strings.HasPrefix(date, year) }
	}

	var period []LogRecord
	for _, r := range records {
		if matches(r.Date) {
			period = append(period, r)
		}
	}
	return period
}

func categoryCounts(records []LogRecord) []CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if counts[r.Category] == 0 {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	var result []CategoryCount
	for _, category := range order {
		result = append(result, CategoryCount{
			Category:   category,
			Count:      counts[category],
			Percentage: percentage(counts[category], len(records)),
		})
	}
	return result
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
