package commands

import (
	"context"
	"fmt"

	"worklog/internal/adapters/flatfile"
	"worklog/internal/application"
)

// ImportCSVResult reports how many rows were imported vs seen
type ImportCSVResult struct {
	Imported int
	Skipped  int
	Total    int
	Message  string
}

// ImportCSVCommand parses exported CSV text and prepends the batch to
// the store. The imported batch is sequenced per date on its own;
// pre-existing records of the same dates are left alone until the next
// reconciling mutation.
type ImportCSVCommand struct {
	store *application.Store
	Text  string
}

// NewImportCSVCommand creates a new ImportCSVCommand
func NewImportCSVCommand(store *application.Store, text string) *ImportCSVCommand {
	return &ImportCSVCommand{store: store, Text: text}
}

// Validate checks if the import operation is valid
func (c *ImportCSVCommand) Validate() error {
	return application.ValidateRequired("text", c.Text)
}

// Execute runs the import command
func (c *ImportCSVCommand) Execute(ctx context.Context) (*ImportCSVResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	parsed := flatfile.ParseCSV(c.Text)
	imported, err := c.store.Import(parsed.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to import logs: %w", err)
	}

	return &ImportCSVResult{
		Imported: imported,
		Skipped:  parsed.Skipped,
		Total:    parsed.Total,
		Message:  fmt.Sprintf("Imported %d of %d row(s)", imported, parsed.Total),
	}, nil
}
