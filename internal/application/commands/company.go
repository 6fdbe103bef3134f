package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
)

// CompanyResult contains the stored company name
type CompanyResult struct {
	Name    string
	Message string
}

// SetCompanyCommand stores the company name used by the text exports
type SetCompanyCommand struct {
	store *application.Store
	Name  string
}

// NewSetCompanyCommand creates a new SetCompanyCommand
func NewSetCompanyCommand(store *application.Store, name string) *SetCompanyCommand {
	return &SetCompanyCommand{store: store, Name: name}
}

// Validate checks if the operation is valid
func (c *SetCompanyCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the command
func (c *SetCompanyCommand) Execute(ctx context.Context) (*CompanyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.store.SetCompanyName(c.Name); err != nil {
		return nil, fmt.Errorf("failed to save company name: %w", err)
	}
	return &CompanyResult{Name: c.Name, Message: fmt.Sprintf("Company name set to %s", c.Name)}, nil
}
