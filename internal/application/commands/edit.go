package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
)

// EditLogResult contains the result of editing a record
type EditLogResult struct {
	Message string
}

// EditLogCommand updates a record's fields. Content containing split
// delimiters turns the extra parts into new records of the same date.
type EditLogCommand struct {
	store *application.Store
	ID    string
	Input application.AddInput
}

// NewEditLogCommand creates a new EditLogCommand
func NewEditLogCommand(store *application.Store, id string, input application.AddInput) *EditLogCommand {
	return &EditLogCommand{store: store, ID: id, Input: input}
}

// Validate checks if the edit operation is valid
func (c *EditLogCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	if err := application.ValidateDate("date", c.Input.Date); err != nil {
		return err
	}
	if err := application.ValidateClock("time", c.Input.Time); err != nil {
		return err
	}
	return application.ValidateRequired("content", c.Input.Content)
}

// Execute runs the edit command
func (c *EditLogCommand) Execute(ctx context.Context) (*EditLogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Edit(c.ID, c.Input); err != nil {
		return nil, fmt.Errorf("failed to edit log: %w", err)
	}
	return &EditLogResult{Message: "Log updated"}, nil
}
