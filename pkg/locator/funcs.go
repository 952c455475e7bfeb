package locator

import "context"

// Funcs adapts plain functions to a Source
type Funcs[T any] struct {
	Kind      string
	FetchFunc func(ctx context.Context, id string) (T, bool, error)
	ListFunc  func(ctx context.Context) ([]T, error)
	MatchFunc func(rec T, ident string) bool
}

// Resource implements Source
func (f Funcs[T]) Resource() string { return f.Kind }

// Fetch implements Source
func (f Funcs[T]) Fetch(ctx context.Context, id string) (T, bool, error) {
	return f.FetchFunc(ctx, id)
}

// List implements Source
func (f Funcs[T]) List(ctx context.Context) ([]T, error) {
	return f.ListFunc(ctx)
}

// Matches implements Source
func (f Funcs[T]) Matches(rec T, ident string) bool {
	return f.MatchFunc(rec, ident)
}
