package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Removed int
	Message string
}

// DeleteLogCommand removes a single record by id
type DeleteLogCommand struct {
	store *application.Store
	ID    string
}

// NewDeleteLogCommand creates a new DeleteLogCommand
func NewDeleteLogCommand(store *application.Store, id string) *DeleteLogCommand {
	return &DeleteLogCommand{store: store, ID: id}
}

// Validate checks if the delete operation is valid
func (c *DeleteLogCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteLogCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	removed, err := c.store.Delete(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete log: %w", err)
	}
	return &DeleteResult{Removed: removed, Message: fmt.Sprintf("Removed %d log(s)", removed)}, nil
}

// BatchDeleteCommand removes several records by id
type BatchDeleteCommand struct {
	store *application.Store
	IDs   []string
}

// NewBatchDeleteCommand creates a new BatchDeleteCommand
func NewBatchDeleteCommand(store *application.Store, ids []string) *BatchDeleteCommand {
	return &BatchDeleteCommand{store: store, IDs: ids}
}

// Validate checks if the batch delete operation is valid
func (c *BatchDeleteCommand) Validate() error {
	if len(c.IDs) == 0 {
		return &application.ValidationError{Field: "ids", Message: "at least one id is required"}
	}
	return nil
}

// Execute runs the batch delete command
func (c *BatchDeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	removed, err := c.store.DeleteBatch(c.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete logs: %w", err)
	}
	return &DeleteResult{Removed: removed, Message: fmt.Sprintf("Removed %d log(s)", removed)}, nil
}

// DeleteDateCommand removes every record of one date
type DeleteDateCommand struct {
	store *application.Store
	Date  string
}

// NewDeleteDateCommand creates a new DeleteDateCommand
func NewDeleteDateCommand(store *application.Store, date string) *DeleteDateCommand {
	return &DeleteDateCommand{store: store, Date: date}
}

// Validate checks if the delete-date operation is valid
func (c *DeleteDateCommand) Validate() error {
	return application.ValidateDate("date", c.Date)
}

// Execute runs the delete-date command
func (c *DeleteDateCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	removed, err := c.store.DeleteDate(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to delete logs for %s: %w", c.Date, err)
	}
	return &DeleteResult{Removed: removed, Message: fmt.Sprintf("Removed %d log(s) from %s", removed, c.Date)}, nil
}

// ClearLogsCommand wipes the record collection. Templates and the
// company name are kept.
type ClearLogsCommand struct {
	store *application.Store
}

// NewClearLogsCommand creates a new ClearLogsCommand
func NewClearLogsCommand(store *application.Store) *ClearLogsCommand {
	return &ClearLogsCommand{store: store}
}

// Execute runs the clear command
func (c *ClearLogsCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	removed, err := c.store.ClearRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to clear logs: %w", err)
	}
	return &DeleteResult{Removed: removed, Message: fmt.Sprintf("Removed all %d log(s)", removed)}, nil
}
