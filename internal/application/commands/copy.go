package commands

import (
	"context"
	"fmt"

	"worklog/internal/adapters/flatfile"
	"worklog/internal/application"
	"worklog/internal/ports"
)

// CopyResult contains the text placed on the clipboard
type CopyResult struct {
	Text    string
	Message string
}

// CopyLogCommand puts one record on the clipboard as "{seq}.{content}"
type CopyLogCommand struct {
	store     *application.Store
	clipboard ports.Clipboard
	ID        string
}

// NewCopyLogCommand creates a new CopyLogCommand
func NewCopyLogCommand(store *application.Store, clipboard ports.Clipboard, id string) *CopyLogCommand {
	return &CopyLogCommand{store: store, clipboard: clipboard, ID: id}
}

// Validate checks if the copy operation is valid
func (c *CopyLogCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the copy command
func (c *CopyLogCommand) Execute(ctx context.Context) (*CopyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	for _, r := range c.store.Records() {
		if r.ID == c.ID {
			text := flatfile.RecordClipboardText(r)
			if err := c.clipboard.Write(text); err != nil {
				return nil, fmt.Errorf("failed to copy log: %w", err)
			}
			return &CopyResult{Text: text, Message: "Log copied to clipboard"}, nil
		}
	}
	return nil, fmt.Errorf("copy %s: %w", c.ID, application.ErrNotFound)
}

// CopyDayCommand puts one date's records on the clipboard in the
// dotted-date + company format
type CopyDayCommand struct {
	store     *application.Store
	clipboard ports.Clipboard
	Date      string
}

// NewCopyDayCommand creates a new CopyDayCommand
func NewCopyDayCommand(store *application.Store, clipboard ports.Clipboard, date string) *CopyDayCommand {
	return &CopyDayCommand{store: store, clipboard: clipboard, Date: date}
}

// Validate checks if the copy operation is valid
func (c *CopyDayCommand) Validate() error {
	return application.ValidateDate("date", c.Date)
}

// Execute runs the copy command
func (c *CopyDayCommand) Execute(ctx context.Context) (*CopyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	text := flatfile.DayClipboardText(c.store.Records(), c.Date, c.store.CompanyName())
	if text == "" {
		return nil, fmt.Errorf("no logs on %s", c.Date)
	}
	if err := c.clipboard.Write(text); err != nil {
		return nil, fmt.Errorf("failed to copy logs: %w", err)
	}
	return &CopyResult{Text: text, Message: "Day copied to clipboard"}, nil
}
