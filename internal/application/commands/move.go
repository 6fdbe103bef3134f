package commands

import (
	"context"
	"fmt"

	"worklog/internal/application"
)

// MoveDirection indicates where a record moves within its date partition
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

func (d MoveDirection) String() string {
	if d == MoveUp {
		return "up"
	}
	return "down"
}

// MoveLogResult contains the result of a move operation
type MoveLogResult struct {
	Moved   bool
	Message string
}

// MoveLogCommand swaps a record with its neighbor inside the date
// partition. At the partition boundary the command reports Moved=false
// and changes nothing.
type MoveLogCommand struct {
	store     *application.Store
	ID        string
	Direction MoveDirection
}

// NewMoveLogCommand creates a new MoveLogCommand
func NewMoveLogCommand(store *application.Store, id string, direction MoveDirection) *MoveLogCommand {
	return &MoveLogCommand{store: store, ID: id, Direction: direction}
}

// Validate checks if the move operation is valid
func (c *MoveLogCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	if c.Direction != MoveUp && c.Direction != MoveDown {
		return &application.ValidationError{Field: "direction", Message: "expected up or down"}
	}
	return nil
}

// Execute runs the move command
func (c *MoveLogCommand) Execute(ctx context.Context) (*MoveLogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var moved bool
	var err error
	if c.Direction == MoveUp {
		moved, err = c.store.MoveUp(c.ID)
	} else {
		moved, err = c.store.MoveDown(c.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to move log: %w", err)
	}

	message := fmt.Sprintf("Log moved %s", c.Direction)
	if !moved {
		message = fmt.Sprintf("Log is already at the %s of its day", boundaryName(c.Direction))
	}
	return &MoveLogResult{Moved: moved, Message: message}, nil
}

func boundaryName(d MoveDirection) string {
	if d == MoveUp {
		return "top"
	}
	return "bottom"
}
