//go:build property_test

package locator

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func recordsOf(n int) []record {
	records := make([]record, n)
	for i := range records {
		records[i] = record{ID: fmt.Sprintf("fip-%d", i), Address: fmt.Sprintf("203.0.%d.%d", i/256, i%256)}
	}
	return records
}

func TestFindProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("an identifier used as ID and as address of distinct records is ambiguous", prop.ForAll(
		func(ident string, otherAddr string, viaAddress bool) bool {
			first := record{ID: ident, Address: otherAddr + "-addr"}
			second := record{ID: otherAddr + "-id", Address: ident}
			src := &fakeSource{byID: map[string]record{}, all: []record{first, second}}
			_, _, _, err := Find[record](context.Background(), src, Cache[record]{}, ident, viaAddress)
			return IsDuplicate(err)
		},
		gen.Identifier(), gen.Identifier(), gen.Bool()))

	properties.Property("a unique match is returned whichever field matched", prop.ForAll(
		func(n, pick int, viaAddress, indexed bool) bool {
			records := recordsOf(n)
			want := records[pick%n]
			src := &fakeSource{byID: map[string]record{}, all: records}
			if indexed {
				for _, r := range records {
					src.byID[r.ID] = r
				}
			}
			ident := want.ID
			if viaAddress {
				ident = want.Address
			}
			got, found, _, err := Find[record](context.Background(), src, Cache[record]{}, ident, false)
			return err == nil && found && got == want
		},
		gen.IntRange(1, 50), gen.IntRange(0, 1000), gen.Bool(), gen.Bool()))

	properties.Property("no match is tolerated only when asked", prop.ForAll(
		func(n int, ident string, ignoreMissing bool) bool {
			src := newFakeSource(recordsOf(n)...)
			_, found, _, err := Find[record](context.Background(), src, Cache[record]{}, "missing-"+ident, ignoreMissing)
			if ignoreMissing {
				return err == nil && !found
			}
			return IsNotFound(err) && !found
		},
		gen.IntRange(0, 50), gen.Identifier(), gen.Bool()))

	properties.Property("a populated cache is never listed again", prop.ForAll(
		func(n int, idents []string) bool {
			src := &fakeSource{byID: map[string]record{}, all: recordsOf(n)}
			var cache Cache[record]
			for _, ident := range idents {
				var err error
				_, _, cache, err = Find[record](context.Background(), src, cache, ident, true)
				if err != nil {
					return false
				}
			}
			return src.listCalls <= 1
		},
		gen.IntRange(0, 20), gen.SliceOf(gen.Identifier())))

	properties.TestingRun(t)
}
