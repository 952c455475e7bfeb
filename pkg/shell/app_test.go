package shell

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/testutil"
	"github.com/younsl/cloudctl/pkg/locator"
)

type result struct {
	out    string
	errOut string
	err    error
}

// run executes one command line against fake, exposing only services
func run(fake *testutil.FakeCloud, services []string, args ...string) result {
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut, false)
	app.LoadCloud = func(config.LoadOptions) (*config.Cloud, error) {
		return fake.Cloud(services...), nil
	}
	err := app.Execute(context.Background(), args)
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func TestDeprecatedAliasMatchesCanonical(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddFloatingIP(testutil.Record{"id": "a", "floating_ip_address": "203.0.113.5"})
	fake.AddFloatingIP(testutil.Record{"id": "b", "floating_ip_address": "203.0.113.6", "port_id": "port-1"})

	canonical := run(fake, nil, "floating", "ip", "list")
	alias := run(fake, nil, "ip", "floating", "list")

	require.NoError(t, canonical.err)
	require.NoError(t, alias.err)
	assert.Contains(t, canonical.out, "| Floating IP Address |")
	assert.Equal(t, canonical.out, alias.out)
	assert.Empty(t, canonical.errOut)
	assert.Equal(t, "WARNING: This command has been deprecated. Please use \"floating ip list\" instead.\n", alias.errOut)
}

func TestDeprecatedAliasKeepsFlags(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddFloatingIP(testutil.Record{"id": "a", "floating_ip_address": "203.0.113.5"})

	res := run(fake, nil, "ip", "floating", "show", "203.0.113.5", "-f", "value")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "203.0.113.5\n")
	assert.Contains(t, res.errOut, `Please use "floating ip show" instead.`)
	assert.Equal(t, 1, strings.Count(res.errOut, "\n"))
}

func TestShowAmbiguousAddress(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddFloatingIP(testutil.Record{"id": "a", "floating_ip_address": "203.0.113.5"})
	fake.AddFloatingIP(testutil.Record{"id": "b", "floating_ip_address": "203.0.113.5"})

	res := run(fake, nil, "floating", "ip", "show", "203.0.113.5")
	require.Error(t, res.err)
	assert.True(t, locator.IsDuplicate(res.err))
	assert.Contains(t, res.err.Error(), "203.0.113.5")
	assert.Empty(t, res.out)
}

func TestBulkDeleteContinuesPastFailures(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddFloatingIP(testutil.Record{"id": "a", "floating_ip_address": "203.0.113.1"})
	fake.AddFloatingIP(testutil.Record{"id": "b1", "floating_ip_address": "203.0.113.2"})
	fake.AddFloatingIP(testutil.Record{"id": "b2", "floating_ip_address": "203.0.113.2"})
	fake.AddFloatingIP(testutil.Record{"id": "c", "floating_ip_address": "203.0.113.3"})

	res := run(fake, nil, "floating", "ip", "delete", "203.0.113.1", "203.0.113.2", "c")
	require.Error(t, res.err)
	assert.Equal(t, "1 of 3 floating IPs failed to delete.", res.err.Error())
	assert.Equal(t,
		"ERROR: Failed to delete floating IP with name or ID '203.0.113.2': More than one floating IP exists with the name '203.0.113.2'.\n",
		res.errOut)

	remaining := fake.FloatingIPs()
	require.Len(t, remaining, 2)
	assert.Equal(t, "b1", remaining[0]["id"])
	assert.Equal(t, "b2", remaining[1]["id"])
	assert.Equal(t, 1, fake.Count(http.MethodGet, "/network/v2.0/floatingips"))
}

func TestCreateWithProject(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddNetwork("net-1", "net1")
	fake.AddDomain("dom-default", "default")
	fake.AddProject("proj-alice", "alice", "dom-default")
	fake.AddProject("proj-other", "alice", "dom-other")

	res := run(fake, nil, "floating", "ip", "create", "net1", "--project", "alice", "--project-domain", "default", "-f", "json")
	require.NoError(t, res.err)

	body := fake.LastBody(http.MethodPost, "/network/v2.0/floatingips")
	assert.Equal(t, map[string]interface{}{"floating_network_id": "net-1", "tenant_id": "proj-alice"}, body["floatingip"])
	assert.Contains(t, res.out, `"project_id": "proj-alice"`)
	assert.NotContains(t, res.out, "tenant_id")
}

func TestSetAndUnset(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddPort("port-1", "web")
	fake.AddFloatingIP(testutil.Record{"id": "a", "floating_ip_address": "203.0.113.5"})

	res := run(fake, nil, "floating", "ip", "set", "203.0.113.5", "--port", "web", "--description", "")
	require.NoError(t, res.err)
	assert.Empty(t, res.out)
	assert.Equal(t, map[string]interface{}{"port_id": "port-1", "description": ""},
		fake.LastBody(http.MethodPut, "/network/v2.0/floatingips/a")["floatingip"])

	res = run(fake, nil, "floating", "ip", "unset", "a", "--port")
	require.NoError(t, res.err)
	assert.Nil(t, fake.FloatingIPs()[0]["port_id"])
}

func TestComputeFallback(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddPool("public")
	fake.AddComputeFloatingIP(testutil.Record{"id": "1", "ip": "198.51.100.1", "pool": "public"})
	compute := []string{config.ServiceCompute}

	res := run(fake, compute, "floating", "ip", "list", "-f", "csv")
	require.NoError(t, res.err)
	assert.Equal(t, "ID,Floating IP Address,Fixed IP Address,Server,Pool\n1,198.51.100.1,,,public\n", res.out)

	res = run(fake, compute, "floating", "ip", "pool", "list", "-f", "value")
	require.NoError(t, res.err)
	assert.Equal(t, "public\n", res.out)

	res = run(fake, compute, "floating", "ip", "set", "1", "--description", "x")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "only available with the network service")
}

func TestPoolListNeedsCompute(t *testing.T) {
	fake := testutil.NewFakeCloud(t)

	res := run(fake, nil, "floating", "ip", "pool", "list")
	require.Error(t, res.err)
	assert.Equal(t, "Floating ip pool operations are only available for Compute v2 network.", res.err.Error())
}

func TestGlobalFlags(t *testing.T) {
	fake := testutil.NewFakeCloud(t)
	fake.AddFloatingIP(testutil.Record{"id": "a"})

	t.Run("version", func(t *testing.T) {
		res := run(fake, nil, "--version")
		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.out, "cloudctl version "))
	})

	t.Run("invalid format", func(t *testing.T) {
		res := run(fake, nil, "floating", "ip", "list", "-f", "xml")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), `invalid format "xml"`)
	})

	t.Run("timing", func(t *testing.T) {
		res := run(fake, nil, "--timing", "floating", "ip", "show", "a")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "## API Call Timings")
		assert.Contains(t, res.out, "/network/v2.0/floatingips/a")
	})

	t.Run("debug logs requests", func(t *testing.T) {
		res := run(fake, nil, "--debug", "floating", "ip", "show", "a")
		require.NoError(t, res.err)
		assert.Contains(t, res.errOut, "DEBUG: REQ: GET ")
	})

	t.Run("status is validated before any call", func(t *testing.T) {
		before := len(fake.Calls())
		res := run(fake, nil, "floating", "ip", "list", "--status", "UP")
		require.Error(t, res.err)
		assert.Len(t, fake.Calls(), before)
	})
}

func TestNoUsableService(t *testing.T) {
	fake := testutil.NewFakeCloud(t)

	res := run(fake, []string{config.ServiceIdentity}, "floating", "ip", "list")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "neither a network nor a compute service")
}
