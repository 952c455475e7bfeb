package openstack

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/younsl/cloudctl/internal/models"
	"github.com/younsl/cloudctl/pkg/locator"
)

// lookup describes where a named resource lives
type lookup struct {
	service  string
	resource string     // display name used in errors
	path     string     // collection path, e.g. /v2.0/networks
	member   string     // envelope key of a single record
	plural   string     // envelope key of a listing
	filters  url.Values // extra filters applied to the name listing
}

// findNamed resolves nameOrID to exactly one resource: by ID first, then by
// scanning a name filtered listing for an ID or name match
func findNamed[T models.Named](ctx context.Context, s *Session, l lookup, nameOrID string) (*T, error) {
	src := locator.Funcs[T]{
		Kind: l.resource,
		FetchFunc: func(ctx context.Context, id string) (T, bool, error) {
			var rec T
			if id == "" {
				return rec, false, nil
			}
			err := s.getOne(ctx, l.service, l.path+"/"+url.PathEscape(id), l.member, &rec)
			if errors.Is(err, ErrNotFound) {
				return rec, false, nil
			}
			return rec, err == nil, err
		},
		ListFunc: func(ctx context.Context) ([]T, error) {
			query := url.Values{"name": {nameOrID}}
			for k, v := range l.filters {
				query[k] = v
			}
			var recs []T
			err := s.requestKeyed(ctx, l.service, http.MethodGet, l.path, query, nil, l.plural, &recs)
			return recs, err
		},
		MatchFunc: func(rec T, ident string) bool {
			return rec.GetID() == ident || rec.GetName() == ident
		},
	}

	rec, _, _, err := locator.Find[T](ctx, src, locator.Cache[T]{}, nameOrID, false)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
