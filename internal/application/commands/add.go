package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
)

// AddLogResult contains the result of adding one or more records
type AddLogResult struct {
	IDs     []string
	Count   int
	Message string
}

// AddLogCommand records one entry, splitting semicolon/newline-delimited
// bulk content into several records
type AddLogCommand struct {
	store     *application.Store
	Input     application.AddInput
	AutoClean bool
}

// NewAddLogCommand creates a new AddLogCommand
func NewAddLogCommand(store *application.Store, input application.AddInput, autoClean bool) *AddLogCommand {
	return &AddLogCommand{store: store, Input: input, AutoClean: autoClean}
}

// Validate checks if the add operation is valid
func (c *AddLogCommand) Validate() error {
	if err := application.ValidateDate("date", c.Input.Date); err != nil {
		return err
	}
	if err := application.ValidateClock("time", c.Input.Time); err != nil {
		return err
	}
	return application.ValidateRequired("content", c.Input.Content)
}

// Execute runs the add command
func (c *AddLogCommand) Execute(ctx context.Context) (*AddLogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result, err := c.store.Add(c.Input, c.AutoClean)
	if err != nil {
		return nil, fmt.Errorf("failed to add log: %w", err)
	}

	message := "Added 1 log"
	if result.Count > 1 {
		message = fmt.Sprintf("Added %d logs", result.Count)
	}
	return &AddLogResult{IDs: result.IDs, Count: result.Count, Message: message}, nil
}
