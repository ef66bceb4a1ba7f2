package cmd

import (
	"errors"
	"fmt"
)

var errValidationFailed = errors.New("validation failed")

// wrapFileError adds a hint to errors from reading a report file.
func wrapFileError(path string, err error) error {
	return fmt.Errorf("✗ cannot read report %s: %w", path, err)
}
