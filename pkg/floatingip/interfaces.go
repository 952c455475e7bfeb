// Package floatingip implements the floating IP commands against either the
// network service or the floating IP API embedded in the compute service.
package floatingip

//go:generate mockgen -source=interfaces.go -package=mocks -destination=mocks/mock_clients.go

import (
	"context"
	"net/url"

	"github.com/younsl/cloudctl/internal/models"
)

// NetworkAPI is the subset of the network service used by floating IP commands
type NetworkAPI interface {
	GetFloatingIP(ctx context.Context, id string) (*models.FloatingIP, error)
	ListFloatingIPs(ctx context.Context, query url.Values) ([]models.FloatingIP, error)
	CreateFloatingIP(ctx context.Context, attrs models.Attrs) (*models.FloatingIP, error)
	UpdateFloatingIP(ctx context.Context, id string, attrs models.Attrs) (*models.FloatingIP, error)
	DeleteFloatingIP(ctx context.Context, id string) error
	FindNetwork(ctx context.Context, nameOrID string) (*models.Network, error)
	FindSubnet(ctx context.Context, nameOrID string) (*models.Subnet, error)
	FindPort(ctx context.Context, nameOrID string) (*models.Port, error)
	FindRouter(ctx context.Context, nameOrID string) (*models.Router, error)
}

// ComputeAPI is the floating IP API of the compute service
type ComputeAPI interface {
	GetFloatingIP(ctx context.Context, id string) (*models.ComputeFloatingIP, error)
	ListFloatingIPs(ctx context.Context) ([]models.ComputeFloatingIP, error)
	CreateFloatingIP(ctx context.Context, pool string) (*models.ComputeFloatingIP, error)
	DeleteFloatingIP(ctx context.Context, id string) error
	ListFloatingIPPools(ctx context.Context) ([]models.FloatingIPPool, error)
}

// ProjectFinder resolves a project name or ID, optionally scoped to a domain
type ProjectFinder interface {
	FindProject(ctx context.Context, nameOrID, domain string) (*models.Project, error)
}

// ServiceProbe reports which services the active cloud exposes
type ServiceProbe interface {
	IsServiceEnabled(service string) bool
}
