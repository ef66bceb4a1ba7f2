// Package exit provides standard exit codes for banner commands.
package exit

// Standard exit codes used by banner commands.
const (
	// Success indicates successful execution.
	Success = 0

	// GeneralError indicates a general error occurred.
	GeneralError = 1

	// ValidationError indicates invalid arguments or a failed document validation.
	ValidationError = 2

	// FileNotFound indicates an input file does not exist.
	FileNotFound = 4
)

var descriptions = map[int]string{
	Success:         "Success",
	GeneralError:    "General error",
	ValidationError: "Validation error",
	FileNotFound:    "File not found",
}

// GetDescription returns the description for an exit code.
func GetDescription(code int) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return "Unknown error"
}
