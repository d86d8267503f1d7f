package transform

import (
	"fmt"

	"github.com/rgehrsitz/ficalc/internal/wizard"
)

// InputEdit is one named change to the calculator input. Edits go through the
// wizard so the same stage validators apply as for interactive edits.
type InputEdit interface {
	// Apply performs the edit on the wizard's input.
	// Returns an error if the wizard rejected or altered the requested value.
	Apply(w *wizard.Wizard) error

	// Name returns the key the edit was created from (e.g., "portfolio_value").
	Name() string

	// Description returns a human-readable description of the edit.
	Description() string
}

// ApplyEdits applies edits in order and stops at the first failure
func ApplyEdits(w *wizard.Wizard, edits []InputEdit) error {
	if w == nil {
		return fmt.Errorf("wizard cannot be nil")
	}

	for i, edit := range edits {
		if edit == nil {
			return fmt.Errorf("edit at index %d is nil", i)
		}
		if err := edit.Apply(w); err != nil {
			return fmt.Errorf("edit %s failed: %w", edit.Name(), err)
		}
	}

	return nil
}

// EditError represents an edit that could not be created or applied.
type EditError struct {
	Key       string
	Operation string
	Reason    string
	Err       error
}

func (e *EditError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("edit %s (%s): %s: %v", e.Key, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("edit %s (%s): %s", e.Key, e.Operation, e.Reason)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// NewEditError creates a new EditError.
func NewEditError(key, operation, reason string, err error) error {
	return &EditError{
		Key:       key,
		Operation: operation,
		Reason:    reason,
		Err:       err,
	}
}

// FieldEdit is an InputEdit backed by a closure over the parsed value
type FieldEdit struct {
	Key   string
	Value string
	desc  string
	apply func(w *wizard.Wizard) error
}

func (e *FieldEdit) Apply(w *wizard.Wizard) error {
	return e.apply(w)
}

func (e *FieldEdit) Name() string {
	return e.Key
}

func (e *FieldEdit) Description() string {
	return e.desc
}
