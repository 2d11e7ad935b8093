package footballdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validator checks inputs before anything is parsed or written
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validateInputs checks every required input up front, in order, and returns
// a MissingInputError for the first one that does not exist.
func (v *validator) validateInputs(paths ...string) error {
	for _, path := range paths {
		if err := v.validateInput(path); err != nil {
			return err
		}
	}
	return nil
}

// validateInput validates a single input file path
func (v *validator) validateInput(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("footballdb: input path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &MissingInputError{Path: path}
		}
		return fmt.Errorf("footballdb: failed to stat path %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("footballdb: input path is a directory: %s", path)
	}
	return nil
}

// validateDatabasePath checks that the database file can be created at path.
// The file itself may or may not exist.
func (v *validator) validateDatabasePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("footballdb: database path cannot be empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("footballdb: database path is a directory: %s", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("footballdb: database directory does not exist: %s", dir)
		}
		return fmt.Errorf("footballdb: failed to check database directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("footballdb: database parent is not a directory: %s", dir)
	}
	return nil
}
