package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedSpecError is returned when a protocol document lacks
// a `methods` sequence.
type MalformedSpecError struct {
	Path   string
	Reason string
}

func (e *MalformedSpecError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed protocol: %s", e.Reason)
	}
	return fmt.Sprintf("malformed protocol %s: %s", e.Path, e.Reason)
}

// IsMalformed returns true if err is (or wraps) a *MalformedSpecError
func IsMalformed(err error) bool {
	_, ok := errors.Cause(err).(*MalformedSpecError)
	return ok
}
