package dedupe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryAccess marks a failure to enumerate the scan root. This is
	// the only error fatal to a scan call.
	ErrDirectoryAccess = errors.New("directory access error")
	// ErrFileAccess marks a file that could not be opened or stat-ed. The
	// file is excluded and the scan continues.
	ErrFileAccess = errors.New("file access error")
	// ErrHashComputation marks a read failure partway through digesting a
	// file. No partial fingerprint is ever produced.
	ErrHashComputation = errors.New("hash computation error")
	// ErrResolutionAction marks a delete/move/hardlink attempt that failed
	// for one file. Sibling files in the group are still processed.
	ErrResolutionAction = errors.New("resolution action error")
	// ErrInvalidConfiguration marks an unrecognized algorithm or action
	// identifier, rejected before any I/O is attempted.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Wrap builds an error message that includes pipeline context while tagging
// it with the provided marker for later classification with errors.Is. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrResolutionAction
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err should abort the enclosing scan call rather than
// be downgraded to a skip-and-report diagnostic.
func Fatal(err error) bool {
	return errors.Is(err, ErrDirectoryAccess) || errors.Is(err, ErrInvalidConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
