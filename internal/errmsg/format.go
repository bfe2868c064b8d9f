// Package errmsg formats failures for the footer and the terminal.
package errmsg

import "fmt"

// Op names what was being attempted when an error occurred.
type Op string

const (
	OpOrderSave  Op = "save card order"
	OpOrderClear Op = "reset card order"
	OpLayoutSave Op = "save layout mode"

	OpStateOpen  Op = "open state database"
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the file or value the operation acted on.
func FormatWith(op Op, target string, err error) string {
	switch {
	case err == nil:
		return ""
	case target == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s %q: %v", op, target, err)
	}
}
