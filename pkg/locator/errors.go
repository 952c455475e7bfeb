package locator

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when an identifier resolves to nothing and
// the caller does not tolerate a missing resource
type ResourceNotFoundError struct {
	Resource   string
	Identifier string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("No %s found for %s", e.Resource, e.Identifier)
}

// DuplicateResourceError is returned when an identifier matches more than one record
type DuplicateResourceError struct {
	Resource   string
	Identifier string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("More than one %s exists with the name '%s'.", e.Resource, e.Identifier)
}

// IsNotFound reports whether err is, or wraps, a ResourceNotFoundError
func IsNotFound(err error) bool {
	var target *ResourceNotFoundError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err is, or wraps, a DuplicateResourceError
func IsDuplicate(err error) bool {
	var target *DuplicateResourceError
	return errors.As(err, &target)
}
