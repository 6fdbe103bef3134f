package commands

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/adapters/flatfile"
	"worklog/internal/application"
)

// ExportResult carries a rendered export and its suggested filename.
// Writing the bytes anywhere is the caller's concern.
type ExportResult struct {
	Filename string
	Data     []byte
}

// ExportCSVCommand renders the whole store as CSV
type ExportCSVCommand struct {
	store *application.Store
}

// NewExportCSVCommand creates a new ExportCSVCommand
func NewExportCSVCommand(store *application.Store) *ExportCSVCommand {
	return &ExportCSVCommand{store: store}
}

// Execute runs the CSV export
func (c *ExportCSVCommand) Execute(ctx context.Context) (*ExportResult, error) {
	records := c.store.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("no logs to export")
	}
	return &ExportResult{
		Filename: fmt.Sprintf("工作日志_%s.csv", time.Now().Format("2006-01-02")),
		Data:     []byte(flatfile.MarshalCSV(records)),
	}, nil
}

// ExportSummaryCommand renders the whole store as the plain-text summary
type ExportSummaryCommand struct {
	store *application.Store
}

// NewExportSummaryCommand creates a new ExportSummaryCommand
func NewExportSummaryCommand(store *application.Store) *ExportSummaryCommand {
	return &ExportSummaryCommand{store: store}
}

// Execute runs the summary export
func (c *ExportSummaryCommand) Execute(ctx context.Context) (*ExportResult, error) {
	records := c.store.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("no logs to export")
	}
	return &ExportResult{
		Filename: fmt.Sprintf("工作日志汇总_%s.txt", time.Now().Format("2006-01-02")),
		Data:     []byte(flatfile.SummaryText(records, c.store.CompanyName())),
	}, nil
}
