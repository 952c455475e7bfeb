package locator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID      string
	Address string
}

type fakeSource struct {
	byID       map[string]record
	all        []record
	fetchErr   error
	listErr    error
	fetchCalls int
	listCalls  int
}

func (s *fakeSource) Resource() string { return "floating IP" }

func (s *fakeSource) Fetch(_ context.Context, id string) (record, bool, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return record{}, false, s.fetchErr
	}
	rec, ok := s.byID[id]
	return rec, ok, nil
}

func (s *fakeSource) List(_ context.Context) ([]record, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.all, nil
}

func (s *fakeSource) Matches(rec record, ident string) bool {
	return rec.ID == ident || rec.Address == ident
}

func newFakeSource(records ...record) *fakeSource {
	s := &fakeSource{byID: map[string]record{}, all: records}
	for _, r := range records {
		s.byID[r.ID] = r
	}
	return s
}

func TestFind(t *testing.T) {
	a := record{ID: "fip-a", Address: "203.0.113.5"}
	b := record{ID: "fip-b", Address: "203.0.113.6"}

	testCases := map[string]struct {
		source        *fakeSource
		ident         string
		ignoreMissing bool
		want          record
		wantFound     bool
		wantErr       func(error) bool
		wantListCalls int
	}{
		"direct ID hit skips listing": {
			source:        newFakeSource(a, b),
			ident:         "fip-a",
			want:          a,
			wantFound:     true,
			wantListCalls: 0,
		},
		"address resolved through listing": {
			source:        newFakeSource(a, b),
			ident:         "203.0.113.6",
			want:          b,
			wantFound:     true,
			wantListCalls: 1,
		},
		"ID of one record equals address of another": {
			source: &fakeSource{
				byID: map[string]record{},
				all:  []record{{ID: "203.0.113.5", Address: "198.51.100.1"}, a},
			},
			ident:         "203.0.113.5",
			wantErr:       IsDuplicate,
			wantListCalls: 1,
		},
		"two records share an address": {
			source:        newFakeSource(a, record{ID: "fip-c", Address: a.Address}),
			ident:         a.Address,
			wantErr:       IsDuplicate,
			wantListCalls: 1,
		},
		"missing tolerated": {
			source:        newFakeSource(a),
			ident:         "192.0.2.1",
			ignoreMissing: true,
			wantFound:     false,
			wantListCalls: 1,
		},
		"missing not tolerated": {
			source:        newFakeSource(a),
			ident:         "192.0.2.1",
			wantErr:       IsNotFound,
			wantListCalls: 1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, found, cache, err := Find[record](context.Background(), tc.source, Cache[record]{}, tc.ident, tc.ignoreMissing)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr(err), "unexpected error: %v", err)
				assert.Contains(t, err.Error(), tc.ident)
				assert.Contains(t, err.Error(), "floating IP")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantFound, found)
				assert.Equal(t, tc.want, got)
			}
			assert.Equal(t, 1, tc.source.fetchCalls)
			assert.Equal(t, tc.wantListCalls, tc.source.listCalls)
			assert.Equal(t, tc.wantListCalls > 0, cache.Populated())
		})
	}
}

func TestFindReusesCache(t *testing.T) {
	src := newFakeSource(
		record{ID: "fip-a", Address: "203.0.113.5"},
		record{ID: "fip-b", Address: "203.0.113.6"},
	)
	src.byID = map[string]record{}

	var cache Cache[record]
	for _, ident := range []string{"203.0.113.5", "203.0.113.6", "fip-a", "192.0.2.9"} {
		var err error
		_, _, cache, err = Find[record](context.Background(), src, cache, ident, true)
		require.NoError(t, err)
	}

	assert.Equal(t, 4, src.fetchCalls)
	assert.Equal(t, 1, src.listCalls, "listing must happen at most once per cache")
	assert.Len(t, cache.Records(), 2)
}

func TestFindEmptyListingStaysPopulated(t *testing.T) {
	src := newFakeSource()

	_, found, cache, err := Find[record](context.Background(), src, Cache[record]{}, "x", true)
	require.NoError(t, err)
	assert.False(t, found)
	assert.True(t, cache.Populated())

	_, _, _, err = Find[record](context.Background(), src, cache, "y", true)
	require.NoError(t, err)
	assert.Equal(t, 1, src.listCalls)
}

func TestFindPropagatesBackendErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("fetch", func(t *testing.T) {
		src := newFakeSource()
		src.fetchErr = boom
		_, _, cache, err := Find[record](context.Background(), src, Cache[record]{}, "x", true)
		assert.ErrorIs(t, err, boom)
		assert.False(t, cache.Populated())
		assert.Zero(t, src.listCalls)
	})

	t.Run("list", func(t *testing.T) {
		src := newFakeSource()
		src.listErr = boom
		_, _, cache, err := Find[record](context.Background(), src, Cache[record]{}, "x", true)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "listing floating IPs")
		assert.False(t, cache.Populated())
	})
}

func TestFuncsAdapter(t *testing.T) {
	src := Funcs[record]{
		Kind: "network",
		FetchFunc: func(_ context.Context, id string) (record, bool, error) {
			return record{}, false, nil
		},
		ListFunc: func(_ context.Context) ([]record, error) {
			return []record{{ID: "net-1", Address: "public"}}, nil
		},
		MatchFunc: func(rec record, ident string) bool {
			return rec.ID == ident || rec.Address == ident
		},
	}

	got, found, _, err := Find[record](context.Background(), src, Cache[record]{}, "public", false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "net-1", got.ID)

	_, _, _, err = Find[record](context.Background(), src, Cache[record]{}, "private", false)
	assert.EqualError(t, err, "No network found for private")
}
