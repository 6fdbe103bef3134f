package domain

import "sort"

// Reconcile recomputes every record's sequence number so that each date
// partition is numbered 1..N densely. Tie-break order is (date asc, time
// asc); a missing time sorts as "00:00". The slice's own order is left
// untouched — only sequence numbers change. Reconciliation is the ground
// truth after structural changes and discards any manual move ordering.
func Reconcile(records []LogRecord) {
	sorted := make([]*LogRecord, len(records))
	for i := range records {
		sorted[i] = &records[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return clockOrZero(sorted[i].Time) < clockOrZero(sorted[j].Time)
	})

	counters := make(map[string]int)
	for _, r := range sorted {
		counters[r.Date]++
		r.SequenceNumber = counters[r.Date]
	}
}

// SortChronological reorders records in place by (date asc, time asc),
// keeping input order for ties. A missing time sorts as "00:00".
func SortChronological(records []LogRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return clockOrZero(records[i].Time) < clockOrZero(records[j].Time)
	})
}

func clockOrZero(clock string) string {
	if clock == "" {
		return "00:00"
	}
	return clock
}

// MaxSequence returns the highest sequence number among records of the
// given date, after normalizing unset numbers to 1. Zero when the date
// has no records.
func MaxSequence(records []LogRecord, date string) int {
	max := 0
	for i := range records {
		if records[i].Date != date {
			continue
		}
		if records[i].SequenceNumber < 1 {
			records[i].SequenceNumber = 1
		}
		if records[i].SequenceNumber > max {
			max = records[i].SequenceNumber
		}
	}
	return max
}
