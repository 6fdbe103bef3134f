// Package clipboard adapts the system clipboard to ports.Clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"worklog/internal/ports"
)

// Writer writes through the system clipboard
type Writer struct{}

// Ensure Writer implements ports.Clipboard
var _ ports.Clipboard = Writer{}

// New creates a clipboard writer
func New() Writer {
	return Writer{}
}

// Write places text on the system clipboard
func (Writer) Write(text string) error {
	return clipboard.WriteAll(text)
}
