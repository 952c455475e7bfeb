package openstack

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younsl/cloudctl/internal/config"
)

func TestComputeFloatingIPLifecycle(t *testing.T) {
	s, fake := newTestSession(t, config.ServiceCompute)
	fake.AddPool("public")
	client := NewComputeClient(s)
	ctx := context.Background()

	created, err := client.CreateFloatingIP(ctx, "public")
	require.NoError(t, err)
	assert.Equal(t, "public", created.Pool)
	assert.NotEmpty(t, created.IP)
	assert.Empty(t, created.InstanceID)
	assert.Contains(t, created.Info, "fixed_ip")
	assert.Equal(t, map[string]interface{}{"pool": "public"}, fake.LastBody(http.MethodPost, "/compute/v2.1/os-floating-ips"))

	got, err := client.GetFloatingIP(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.IP, got.IP)

	list, err := client.ListFloatingIPs(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, client.DeleteFloatingIP(ctx, created.ID))
	_, err = client.GetFloatingIP(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Floating IP not found for ID")
}

func TestComputeCreateUnknownPool(t *testing.T) {
	s, _ := newTestSession(t, config.ServiceCompute)

	_, err := NewComputeClient(s).CreateFloatingIP(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Floating IP pool not found.")
}

func TestComputeDecodesNumericIDs(t *testing.T) {
	fip, err := decodeComputeFloatingIP(map[string]interface{}{
		"id":          float64(7),
		"ip":          "198.51.100.7",
		"fixed_ip":    nil,
		"instance_id": "server-1",
		"pool":        "nova",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", fip.ID)
	assert.Equal(t, "server-1", fip.InstanceID)
	assert.Equal(t, float64(7), fip.Info["id"])
}

func TestComputeListPools(t *testing.T) {
	s, fake := newTestSession(t, config.ServiceCompute)
	fake.AddPool("public")
	fake.AddPool("private")

	pools, err := NewComputeClient(s).ListFloatingIPPools(context.Background())
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "public", pools[0].Name)
	assert.Equal(t, "private", pools[1].Name)
}
