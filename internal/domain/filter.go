package domain

import (
	"sort"
	"strings"
)

// Filter is the predicate for listing records. All supplied fields are
// ANDed; empty fields are ignored. A zero Filter is "no active filter",
// which is distinct from a filter that happens to match everything.
type Filter struct {
	Keyword   string
	DateStart string
	DateEnd   string
	Category  string
}

// Active reports whether any predicate field is set.
func (f Filter) Active() bool {
	return f.Keyword != "" || f.DateStart != "" || f.DateEnd != "" || f.Category != ""
}

// Matches reports whether the record satisfies every supplied predicate.
// The keyword matches case-insensitively against content or any tag.
func (f Filter) Matches(r LogRecord) bool {
	if f.Keyword != "" {
		keyword := strings.ToLower(f.Keyword)
		ok := strings.Contains(strings.ToLower(r.Content), keyword)
		for _, tag := range r.Tags {
			if ok {
				break
			}
			ok = strings.Contains(strings.ToLower(tag), keyword)
		}
		if !ok {
			return false
		}
	}
	if f.DateStart != "" && r.Date < f.DateStart {
		return false
	}
	if f.DateEnd != "" && r.Date > f.DateEnd {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	return true
}

// FilterRecords returns the records matching f, preserving input order.
func FilterRecords(records []LogRecord, f Filter) []LogRecord {
	var matched []LogRecord
	for _, r := range records {
		if f.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// SortForDisplay returns a copy sorted for listing: newest date first,
// then ascending sequence number within each date.
func SortForDisplay(records []LogRecord) []LogRecord {
	sorted := make([]LogRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].Seq() < sorted[j].Seq()
	})
	return sorted
}

// Page is one page of a display-ordered record listing.
type Page struct {
	Items      []LogRecord
	TotalPages int
}

// Paginate slices display-ordered records into the requested 1-based
// page. Page size defaults to 10 when not positive. The page number is
// not clamped; out-of-range pages yield an empty item list.
func Paginate(records []LogRecord, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	total := (len(records) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(records) {
		return Page{TotalPages: total}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return Page{Items: records[start:end], TotalPages: total}
}

// RecordsForDate returns the records of one date ordered by sequence number.
func RecordsForDate(records []LogRecord, date string) []LogRecord {
	var day []LogRecord
	for _, r := range records {
		if r.Date == date {
			day = append(day, r)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Seq() < day[j].Seq()
	})
	return day
}

// DatesDescending returns the distinct dates present, newest first.
func DatesDescending(records []LogRecord) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, r := range records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
