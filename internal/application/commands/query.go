package commands

import (
	"context"
	"time"

	"worklog/internal/application"
	"worklog/internal/domain"
)

// ListLogsResult is one page of the filtered, display-ordered listing
type ListLogsResult struct {
	Records      []domain.LogRecord
	Page         int
	TotalPages   int
	TotalMatched int
	FilterActive bool
}

// ListLogsQuery projects the filtered, paginated record listing. An
// all-empty filter lists the whole store; FilterActive distinguishes
// that from a filter that matched everything.
type ListLogsQuery struct {
	store    *application.Store
	Filter   domain.Filter
	Page     int
	PageSize int
}

// NewListLogsQuery creates a new ListLogsQuery
func NewListLogsQuery(store *application.Store, filter domain.Filter, page, pageSize int) *ListLogsQuery {
	return &ListLogsQuery{store: store, Filter: filter, Page: page, PageSize: pageSize}
}

// Execute runs the listing query
func (q *ListLogsQuery) Execute(ctx context.Context) (*ListLogsResult, error) {
	records := q.store.Records()
	if q.Filter.Active() {
		records = domain.FilterRecords(records, q.Filter)
	}
	records = domain.SortForDisplay(records)

	page := q.Page
	if page < 1 {
		page = 1
	}
	paged := domain.Paginate(records, page, q.PageSize)

	return &ListLogsResult{
		Records:      paged.Items,
		Page:         page,
		TotalPages:   paged.TotalPages,
		TotalMatched: len(records),
		FilterActive: q.Filter.Active(),
	}, nil
}

// DayLogsQuery lists one date's records in sequence order
type DayLogsQuery struct {
	store *application.Store
	Date  string
}

// NewDayLogsQuery creates a new DayLogsQuery
func NewDayLogsQuery(store *application.Store, date string) *DayLogsQuery {
	return &DayLogsQuery{store: store, Date: date}
}

// Validate checks if the query is valid
func (q *DayLogsQuery) Validate() error {
	return application.ValidateDate("date", q.Date)
}

// Execute runs the day query
func (q *DayLogsQuery) Execute(ctx context.Context) ([]domain.LogRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return domain.RecordsForDate(q.store.Records(), q.Date), nil
}

// OverviewQuery computes the dashboard counters
type OverviewQuery struct {
	store *application.Store
	Now   time.Time
}

// NewOverviewQuery creates a new OverviewQuery
func NewOverviewQuery(store *application.Store, now time.Time) *OverviewQuery {
	return &OverviewQuery{store: store, Now: now}
}

// Execute runs the overview query
func (q *OverviewQuery) Execute(ctx context.Context) (domain.Overview, error) {
	return domain.OverviewCounts(q.store.Records(), q.Now), nil
}

// DailyStatsQuery aggregates one date by category
type DailyStatsQuery struct {
	store *application.Store
	Date  string
}

// NewDailyStatsQuery creates a new DailyStatsQuery
func NewDailyStatsQuery(store *application.Store, date string) *DailyStatsQuery {
	return &DailyStatsQuery{store: store, Date: date}
}

// Validate checks if the query is valid
func (q *DailyStatsQuery) Validate() error {
	return application.ValidateDate("date", q.Date)
}

// Execute runs the daily stats query
func (q *DailyStatsQuery) Execute(ctx context.Context) (domain.DailyReport, error) {
	if err := q.Validate(); err != nil {
		return domain.DailyReport{}, err
	}
	return domain.DailyStats(q.store.Records(), q.Date), nil
}

// MonthlyStatsQuery buckets one year's records by month
type MonthlyStatsQuery struct {
	store *application.Store
	Year  int
}

// NewMonthlyStatsQuery creates a new MonthlyStatsQuery
func NewMonthlyStatsQuery(store *application.Store, year int) *MonthlyStatsQuery {
	return &MonthlyStatsQuery{store: store, Year: year}
}

// Validate checks if the query is valid
func (q *MonthlyStatsQuery) Validate() error {
	if q.Year <= 0 {
		return &application.ValidationError{Field: "year", Message: "a positive year is required"}
	}
	return nil
}

// Execute runs the monthly stats query
func (q *MonthlyStatsQuery) Execute(ctx context.Context) (domain.MonthlyReport, error) {
	if err := q.Validate(); err != nil {
		return domain.MonthlyReport{}, err
	}
	return domain.MonthlyStats(q.store.Records(), q.Year), nil
}

// YearlyStatsQuery buckets records per year over an inclusive range
type YearlyStatsQuery struct {
	store     *application.Store
	StartYear int
	EndYear   int
}

// NewYearlyStatsQuery creates a new YearlyStatsQuery
func NewYearlyStatsQuery(store *application.Store, startYear, endYear int) *YearlyStatsQuery {
	return &YearlyStatsQuery{store: store, StartYear: startYear, EndYear: endYear}
}

// Execute runs the yearly stats query
func (q *YearlyStatsQuery) Execute(ctx context.Context) (domain.YearlyReport, error) {
	return domain.YearlyStats(q.store.Records(), q.StartYear, q.EndYear)
}

// CategoryStatsQuery computes the category distribution over a period
type CategoryStatsQuery struct {
	store  *application.Store
	Period domain.Period
	Now    time.Time
}

// NewCategoryStatsQuery creates a new CategoryStatsQuery
func NewCategoryStatsQuery(store *application.Store, period domain.Period, now time.Time) *CategoryStatsQuery {
	return &CategoryStatsQuery{store: store, Period: period, Now: now}
}

// Validate checks if the query is valid
func (q *CategoryStatsQuery) Validate() error {
	return application.ValidatePeriod("period", q.Period)
}

// Execute runs the category stats query
func (q *CategoryStatsQuery) Execute(ctx context.Context) (domain.CategoryReport, error) {
	if err := q.Validate(); err != nil {
		return domain.CategoryReport{}, err
	}
	return domain.CategoryStats(q.store.Records(), q.Period, q.Now), nil
}

// FrequencyStatsQuery ranks content strings by occurrence over a period
type FrequencyStatsQuery struct {
	store  *application.Store
	Period domain.Period
	Now    time.Time
}

// NewFrequencyStatsQuery creates a new FrequencyStatsQuery
func NewFrequencyStatsQuery(store *application.Store, period domain.Period, now time.Time) *FrequencyStatsQuery {
	return &FrequencyStatsQuery{store: store, Period: period, Now: now}
}

// Validate checks if the query is valid
func (q *FrequencyStatsQuery) Validate() error {
	return application.ValidatePeriod("period", q.Period)
}

// Execute runs the frequency stats query
func (q *FrequencyStatsQuery) Execute(ctx context.Context) (domain.FrequencyReport, error) {
	if err := q.Validate(); err != nil {
		return domain.FrequencyReport{}, err
	}
	return domain.FrequencyStats(q.store.Records(), q.Period, q.Now), nil
}
