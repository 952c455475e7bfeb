package floatingip

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/testutil"
	"github.com/younsl/cloudctl/pkg/floatingip/mocks"
	"github.com/younsl/cloudctl/pkg/openstack"
)

func newTestLogger() (*log.Entry, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return log.NewEntry(logger), hook
}

// newTestBackends wires both backends to one fake cloud through the real clients
func newTestBackends(t *testing.T) (*testutil.FakeCloud, *NetworkBackend, *ComputeBackend) {
	t.Helper()
	fake := testutil.NewFakeCloud(t)
	logger, _ := newTestLogger()
	session := openstack.NewSession(fake.Cloud(), logger)

	network := NewNetworkBackend(openstack.NewNetworkClient(session), openstack.NewIdentityClient(session), logger)
	compute := NewComputeBackend(openstack.NewComputeClient(session), logger)
	return fake, network, compute
}

func TestSelectBackend(t *testing.T) {
	tests := map[string]struct {
		network bool
		compute bool
		want    Kind
		wantErr error
	}{
		"network preferred":  {network: true, compute: true, want: KindNetwork},
		"network only":       {network: true, want: KindNetwork},
		"compute fallback":   {compute: true, want: KindCompute},
		"nothing to talk to": {wantErr: ErrNoBackend},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			probe := mocks.NewMockServiceProbe(ctrl)
			probe.EXPECT().IsServiceEnabled(config.ServiceNetwork).Return(tc.network)
			if !tc.network {
				probe.EXPECT().IsServiceEnabled(config.ServiceCompute).Return(tc.compute)
			}

			clients := Clients{
				Network:  mocks.NewMockNetworkAPI(ctrl),
				Compute:  mocks.NewMockComputeAPI(ctrl),
				Projects: mocks.NewMockProjectFinder(ctrl),
			}
			logger, _ := newTestLogger()

			backend, err := SelectBackend(probe, clients, logger)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, backend.Kind())
		})
	}
}

func TestBackendSpecificOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := newTestLogger()
	network := NewNetworkBackend(mocks.NewMockNetworkAPI(ctrl), mocks.NewMockProjectFinder(ctrl), logger)
	compute := NewComputeBackend(mocks.NewMockComputeAPI(ctrl), logger)
	ctx := context.Background()

	_, err := ListPools(ctx, network)
	require.Error(t, err)
	assert.Equal(t, "Floating ip pool operations are only available for Compute v2 network.", err.Error())

	err = Set(ctx, compute, "203.0.113.5", SetOptions{})
	assert.ErrorIs(t, err, ErrNeedsNetwork)

	err = Unset(ctx, compute, "203.0.113.5", UnsetOptions{Port: true})
	assert.ErrorIs(t, err, ErrNeedsNetwork)
}
