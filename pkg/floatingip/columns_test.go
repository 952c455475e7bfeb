package floatingip

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younsl/cloudctl/internal/models"
)

func TestShowColumns(t *testing.T) {
	tests := map[string]struct {
		keys   []string
		hidden mapset.Set[string]
		want   []string
	}{
		"sorted": {
			keys:   []string{"status", "id", "description"},
			hidden: mapset.NewSet[string](),
			want:   []string{"description", "id", "status"},
		},
		"tenant_id shown as project_id": {
			keys:   []string{"tenant_id", "id"},
			hidden: mapset.NewSet[string](),
			want:   []string{"id", "project_id"},
		},
		"both owner keys collapse": {
			keys:   []string{"project_id", "tenant_id", "id"},
			hidden: mapset.NewSet[string](),
			want:   []string{"id", "project_id"},
		},
		"hidden attributes dropped": {
			keys:   []string{"location", "id"},
			hidden: hiddenNetworkAttrs,
			want:   []string{"id"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, showColumns(tc.keys, tc.hidden))
		})
	}
}

func TestComputeItemSurfacesTenant(t *testing.T) {
	item := computeItem(&models.ComputeFloatingIP{Info: map[string]interface{}{
		"id":        "1",
		"tenant_id": "proj-1",
	}})
	assert.Equal(t, []string{"id", "project_id"}, item.Columns)
	assert.Equal(t, []interface{}{"1", "proj-1"}, item.Values)
}
