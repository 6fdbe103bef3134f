package domain

import (
	"strings"
	"time"
)

// DefaultCategory is applied whenever a record or template is created or
// updated with an empty category.
const DefaultCategory = "日常工作"

// DefaultCompanyName is used until the user stores their own.
const DefaultCompanyName = "EchoOfCloud"

// DateLayout is the calendar-date format used as the partition key.
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format carried on each record.
const TimeLayout = "15:04"

// LogRecord is a single work-log entry. Date partitions records;
// SequenceNumber is the 1-based rank inside that partition and must stay
// dense (1..N) after every store mutation. JSON field names match the
// persisted storage format, so an existing workLogs blob round-trips.
type LogRecord struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"` // YYYY-MM-DD
	Time           string   `json:"time"` // HH:MM
	Content        string   `json:"content"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Timestamp      int64    `json:"timestamp"` // epoch millis from Date+Time
	SequenceNumber int      `json:"sequenceNumber"`
	Created        int64    `json:"created"` // epoch millis at creation
}

// CommonLog is a reusable content/category/tags template, independent of
// any record or date. Catalogue order is user-controlled and persisted.
type CommonLog struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Seq returns the record's sequence number, treating unset as 1.
func (r LogRecord) Seq() int {
	if r.SequenceNumber < 1 {
		return 1
	}
	return r.SequenceNumber
}

// DeriveTimestamp computes the epoch-millisecond instant for a date and
// wall-clock time in local time. Returns 0 when either part is malformed.
func DeriveTimestamp(date, clock string) int64 {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, date+"T"+clock, time.Local)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed HH:MM time.
func ValidClock(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// ParseTags splits a comma-separated tag string into trimmed, non-empty tags.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NormalizeCategory substitutes the default category for an empty one.
func NormalizeCategory(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return category
}
