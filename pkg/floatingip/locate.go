package floatingip

import (
	"context"
	"errors"

	"github.com/younsl/cloudctl/internal/models"
	"github.com/younsl/cloudctl/pkg/locator"
	"github.com/younsl/cloudctl/pkg/openstack"
)

const resourceName = "floating IP"

// networkSource resolves network floating IPs by ID or floating IP address
type networkSource struct {
	api NetworkAPI
}

func (s networkSource) Resource() string { return resourceName }

func (s networkSource) Fetch(ctx context.Context, id string) (models.FloatingIP, bool, error) {
	fip, err := s.api.GetFloatingIP(ctx, id)
	if errors.Is(err, openstack.ErrNotFound) {
		return models.FloatingIP{}, false, nil
	}
	if err != nil {
		return models.FloatingIP{}, false, err
	}
	return *fip, true, nil
}

func (s networkSource) List(ctx context.Context) ([]models.FloatingIP, error) {
	return s.api.ListFloatingIPs(ctx, nil)
}

func (s networkSource) Matches(fip models.FloatingIP, ident string) bool {
	return fip.ID == ident || fip.FloatingIPAddress == ident
}

// computeSource resolves compute floating IPs by ID or address
type computeSource struct {
	api ComputeAPI
}

func (s computeSource) Resource() string { return resourceName }

func (s computeSource) Fetch(ctx context.Context, id string) (models.ComputeFloatingIP, bool, error) {
	fip, err := s.api.GetFloatingIP(ctx, id)
	if errors.Is(err, openstack.ErrNotFound) {
		return models.ComputeFloatingIP{}, false, nil
	}
	if err != nil {
		return models.ComputeFloatingIP{}, false, err
	}
	return *fip, true, nil
}

func (s computeSource) List(ctx context.Context) ([]models.ComputeFloatingIP, error) {
	return s.api.ListFloatingIPs(ctx)
}

func (s computeSource) Matches(fip models.ComputeFloatingIP, ident string) bool {
	return fip.ID == ident || fip.IP == ident
}

var (
	_ locator.Source[models.FloatingIP]        = networkSource{}
	_ locator.Source[models.ComputeFloatingIP] = computeSource{}
)
