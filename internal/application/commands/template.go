package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
	"worklog/internal/domain"
)

// TemplateResult contains the result of a template mutation
type TemplateResult struct {
	Template *domain.CommonLog
	Message  string
}

// AddTemplateCommand appends a common-log template to the catalogue
type AddTemplateCommand struct {
	store    *application.Store
	Content  string
	Category string
	Tags     []string
	// Unique rejects content already present in the catalogue, as when
	// adding straight from the frequency ranking.
	Unique bool
}

// NewAddTemplateCommand creates a new AddTemplateCommand
func NewAddTemplateCommand(store *application.Store, content, category string, tags []string, unique bool) *AddTemplateCommand {
	return &AddTemplateCommand{store: store, Content: content, Category: category, Tags: tags, Unique: unique}
}

// Validate checks if the add operation is valid
func (c *AddTemplateCommand) Validate() error {
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the add command
func (c *AddTemplateCommand) Execute(ctx context.Context) (*TemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var template *domain.CommonLog
	var err error
	if c.Unique {
		template, err = c.store.AddCommonLogUnique(c.Content)
	} else {
		template, err = c.store.AddCommonLog(c.Content, c.Category, c.Tags)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add template: %w", err)
	}
	return &TemplateResult{Template: template, Message: "Template added"}, nil
}

// UpdateTemplateCommand replaces a template's fields
type UpdateTemplateCommand struct {
	store    *application.Store
	ID       string
	Content  string
	Category string
	Tags     []string
}

// NewUpdateTemplateCommand creates a new UpdateTemplateCommand
func NewUpdateTemplateCommand(store *application.Store, id, content, category string, tags []string) *UpdateTemplateCommand {
	return &UpdateTemplateCommand{store: store, ID: id, Content: content, Category: category, Tags: tags}
}

// Validate checks if the update operation is valid
func (c *UpdateTemplateCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the update command
func (c *UpdateTemplateCommand) Execute(ctx context.Context) (*TemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.store.UpdateCommonLog(c.ID, c.Content, c.Category, c.Tags); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return &TemplateResult{Message: "Template updated"}, nil
}

// DeleteTemplateCommand removes a template from the catalogue
type DeleteTemplateCommand struct {
	store *application.Store
	ID    string
}

// NewDeleteTemplateCommand creates a new DeleteTemplateCommand
func NewDeleteTemplateCommand(store *application.Store, id string) *DeleteTemplateCommand {
	return &DeleteTemplateCommand{store: store, ID: id}
}

// Validate checks if the delete operation is valid
func (c *DeleteTemplateCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteTemplateCommand) Execute(ctx context.Context) (*TemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.store.DeleteCommonLog(c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete template: %w", err)
	}
	return &TemplateResult{Message: "Template deleted"}, nil
}

// MoveTemplateCommand reorders a template within the catalogue
type MoveTemplateCommand struct {
	store     *application.Store
	ID        string
	Direction MoveDirection
}

// NewMoveTemplateCommand creates a new MoveTemplateCommand
func NewMoveTemplateCommand(store *application.Store, id string, direction MoveDirection) *MoveTemplateCommand {
	return &MoveTemplateCommand{store: store, ID: id, Direction: direction}
}

// Validate checks if the move operation is valid
func (c *MoveTemplateCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the move command
func (c *MoveTemplateCommand) Execute(ctx context.Context) (*MoveLogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var moved bool
	var err error
	if c.Direction == MoveUp {
		moved, err = c.store.MoveCommonLogUp(c.ID)
	} else {
		moved, err = c.store.MoveCommonLogDown(c.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to move template: %w", err)
	}

	message := fmt.Sprintf("Template moved %s", c.Direction)
	if !moved {
		message = fmt.Sprintf("Template is already at the %s", boundaryName(c.Direction))
	}
	return &MoveLogResult{Moved: moved, Message: message}, nil
}
