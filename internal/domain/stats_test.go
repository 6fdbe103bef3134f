package domain

import (
	"errors"
	"testing"
	"time"
)

var statsNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func TestOverviewCounts(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-31"},
		{Date: "2026-08-31"},
		{Date: "2026-08-01"},
		{Date: "2026-01-15"},
		{Date: "2025-12-31"},
	}

	o := OverviewCounts(records, statsNow)

	if o.Today != 2 {
		t.Errorf("Today = %d, want 2", o.Today)
	}
	if o.Month != 3 {
		t.Errorf("Month = %d, want 3", o.Month)
	}
	if o.Year != 4 {
		t.Errorf("Year = %d, want 4", o.Year)
	}
	if o.Total != 5 {
		t.Errorf("Total = %d, want 5", o.Total)
	}
}

func TestDailyStats(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-31", Category: "日常工作"},
		{Date: "2026-08-31", Category: "运维"},
		{Date: "2026-08-31", Category: "日常工作"},
		{Date: "2026-08-30", Category: "日常工作"},
	}

	report := DailyStats(records, "2026-08-31")

	if report.Total != 3 {
		t.Fatalf("Total = %d, want 3", report.Total)
	}
	if len(report.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(report.Categories))
	}

	// First-seen order, rounded percentages.
	first := report.Categories[0]
	if first.Category != "日常工作" || first.Count != 2 || first.Percentage != 67 {
		t.Errorf("first bucket = %+v, want 日常工作/2/67", first)
	}
	second := report.Categories[1]
	if second.Category != "运维" || second.Count != 1 || second.Percentage != 33 {
		t.Errorf("second bucket = %+v, want 运维/1/33", second)
	}
}

func TestMonthlyStats(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-01-10"},
		{Date: "2026-01-20"},
		{Date: "2026-12-05"},
		{Date: "2025-01-01"},
		{Date: "bogus"},
	}

	report := MonthlyStats(records, 2026)

	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	if report.Months[0] != 2 {
		t.Errorf("January = %d, want 2", report.Months[0])
	}
	if report.Months[11] != 1 {
		t.Errorf("December = %d, want 1", report.Months[11])
	}
}

func TestYearlyStats(t *testing.T) {
	records := []LogRecord{
		{Date: "2024-05-01"},
		{Date: "2025-06-01"},
		{Date: "2025-07-01"},
		{Date: "2023-01-01"},
	}

	report, err := YearlyStats(records, 2024, 2026)
	if err != nil {
		t.Fatalf("YearlyStats failed: %v", err)
	}

	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	want := []YearCount{{2024, 1}, {2025, 2}, {2026, 0}}
	for i, y := range report.Years {
		if y != want[i] {
			t.Errorf("Years[%d] = %+v, want %+v", i, y, want[i])
		}
	}
}

func TestYearlyStats_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{name: "start after end", start: 2026, end: 2024},
		{name: "zero start", start: 0, end: 2026},
		{name: "negative end", start: 2024, end: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YearlyStats(nil, tt.start, tt.end)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestCategoryStats_MonthIsCalendarMonth(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-05", Category: "日常工作"}, // this calendar month, >30 days back
		{Date: "2026-08-31", Category: "运维"},
		{Date: "2026-07-30", Category: "日常工作"}, // last month
	}

	report := CategoryStats(records, PeriodMonth, statsNow)

	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
}

func TestFrequencyStats_MonthIsTrailingWindow(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-05", Content: "写周报"}, // within 30 days
		{Date: "2026-08-31", Content: "写周报"},
		{Date: "2026-07-30", Content: "写周报"}, // 32 days back, outside
	}

	report := FrequencyStats(records, PeriodMonth, statsNow)

	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
	if len(report.Entries) != 1 || report.Entries[0].Count != 2 {
		t.Fatalf("Entries = %+v, want one entry with count 2", report.Entries)
	}
}

func TestFrequencyStats_Ranking(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-31", Content: "写周报"},
		{Date: "2026-08-31", Content: "代码评审 "},
		{Date: "2026-08-31", Content: "写周报"},
		{Date: "2026-08-31", Content: "写周报"},
		{Date: "2026-08-31", Content: "  "},
	}

	report := FrequencyStats(records, PeriodToday, statsNow)

	// Blank content is excluded from the ranking but counts toward Total.
	if report.Total != 5 {
		t.Errorf("Total = %d, want 5", report.Total)
	}
	if report.Distinct != 2 {
		t.Errorf("Distinct = %d, want 2", report.Distinct)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}

	top := report.Entries[0]
	if top.Rank != 1 || top.Content != "写周报" || top.Count != 3 || top.Percentage != 60 {
		t.Errorf("top entry = %+v, want 写周报/3/60%%", top)
	}
	if report.Entries[1].Content != "代码评审" {
		t.Errorf("second entry = %q, want trimmed 代码评审", report.Entries[1].Content)
	}
}

func TestFrequencyStats_CapsAtLimit(t *testing.T) {
	var records []LogRecord
	for i := 0; i < FrequencyLimit+5; i++ {
		records = append(records, LogRecord{
			Date:    "2026-08-31",
			Content: "任务" + string(rune('A'+i)),
		})
	}

	report := FrequencyStats(records, PeriodToday, statsNow)

	if report.Distinct != FrequencyLimit+5 {
		t.Errorf("Distinct = %d, want %d", report.Distinct, FrequencyLimit+5)
	}
	if len(report.Entries) != FrequencyLimit {
		t.Errorf("len(Entries) = %d, want %d", len(report.Entries), FrequencyLimit)
	}
}

func TestFrequencyStats_TiesKeepFirstSeenOrder(t *testing.T) {
	records := []LogRecord{
		{Date: "2026-08-31", Content: "写周报"},
		{Date: "2026-08-31", Content: "代码评审"},
	}

	report := FrequencyStats(records, PeriodToday, statsNow)

	if report.Entries[0].Content != "写周报" || report.Entries[1].Content != "代码评审" {
		t.Errorf("tie order = %q, %q, want first-seen order",
			report.Entries[0].Content, report.Entries[1].Content)
	}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Period("decade").Valid() {
		t.Error("decade should not be valid")
	}
}
