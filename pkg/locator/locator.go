// Package locator resolves user supplied identifiers (IDs, names, addresses)
// to a single backend record.
//
// Resolution always tries a direct fetch by ID first. Only when the backend
// reports that no record has that ID does the locator fall back to a full
// listing, which it scans for records whose ID or natural key equals the
// identifier. The listing is kept in a Cache owned by the caller so that a
// command resolving several identifiers lists at most once.
package locator

import (
	"context"
	"fmt"
)

// Source is the backend view a record type is resolved against
type Source[T any] interface {
	// Resource is the display name used in error messages (e.g. "floating IP")
	Resource() string

	// Fetch looks a record up by ID. found is false, with a nil error, when
	// the backend reports that no record has that ID.
	Fetch(ctx context.Context, id string) (rec T, found bool, err error)

	// List returns every record visible to the caller
	List(ctx context.Context) ([]T, error)

	// Matches reports whether rec is identified by ident
	Matches(rec T, ident string) bool
}

// Cache holds the result of one full listing. The zero value is an empty,
// unpopulated cache.
type Cache[T any] struct {
	records   []T
	populated bool
}

// Populated reports whether the cache has been filled by a listing
func (c Cache[T]) Populated() bool {
	return c.populated
}

// Records returns the cached records
func (c Cache[T]) Records() []T {
	return c.records
}

// fill returns the cache populated from src, listing only if it is not yet populated
func (c Cache[T]) fill(ctx context.Context, src Source[T]) (Cache[T], error) {
	if c.populated {
		return c, nil
	}
	records, err := src.List(ctx)
	if err != nil {
		return c, fmt.Errorf("listing %ss: %w", src.Resource(), err)
	}
	return Cache[T]{records: records, populated: true}, nil
}

// Find resolves ident to exactly one record of src.
//
// The returned cache is the one passed in, populated if a listing was needed;
// callers resolving several identifiers thread it through consecutive calls.
// When nothing matches, Find returns found=false and a nil error if
// ignoreMissing is set, and a *ResourceNotFoundError otherwise. More than one
// match is always a *DuplicateResourceError.
func Find[T any](ctx context.Context, src Source[T], cache Cache[T], ident string, ignoreMissing bool) (rec T, found bool, updated Cache[T], err error) {
	var zero T

	rec, found, err = src.Fetch(ctx, ident)
	if err != nil {
		return zero, false, cache, err
	}
	if found {
		return rec, true, cache, nil
	}

	cache, err = cache.fill(ctx, src)
	if err != nil {
		return zero, false, cache, err
	}

	rec, found, err = oneMatch(src, cache.records, ident)
	if err != nil || found {
		return rec, found, cache, err
	}

	if ignoreMissing {
		return zero, false, cache, nil
	}
	return zero, false, cache, &ResourceNotFoundError{Resource: src.Resource(), Identifier: ident}
}

// oneMatch scans records for ident, refusing to pick between several matches
func oneMatch[T any](src Source[T], records []T, ident string) (T, bool, error) {
	var (
		result T
		found  bool
	)
	for _, candidate := range records {
		if !src.Matches(candidate, ident) {
			continue
		}
		if found {
			var zero T
			return zero, false, &DuplicateResourceError{Resource: src.Resource(), Identifier: ident}
		}
		result, found = candidate, true
	}
	return result, found, nil
}
