package openstack

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/models"
)

const networkAPIPrefix = "/v2.0"

// NetworkClient struct for network service client
type NetworkClient struct {
	session *Session
}

// NewNetworkClient creates a new NetworkClient
func NewNetworkClient(session *Session) *NetworkClient {
	return &NetworkClient{session: session}
}

func (c *NetworkClient) floatingIPPath(id string) string {
	return networkAPIPrefix + "/floatingips/" + url.PathEscape(id)
}

// GetFloatingIP fetches a floating IP by ID. A missing floating IP yields an
// error matching ErrNotFound.
func (c *NetworkClient) GetFloatingIP(ctx context.Context, id string) (*models.FloatingIP, error) {
	if id == "" {
		return nil, errors.Wrap(ErrNotFound, "empty floating IP ID")
	}

	var fip models.FloatingIP
	if err := c.session.getOne(ctx, config.ServiceNetwork, c.floatingIPPath(id), "floatingip", &fip); err != nil {
		return nil, err
	}
	return &fip, nil
}

// ListFloatingIPs returns the floating IPs matching query
func (c *NetworkClient) ListFloatingIPs(ctx context.Context, query url.Values) ([]models.FloatingIP, error) {
	var fips []models.FloatingIP
	err := c.session.requestKeyed(ctx, config.ServiceNetwork, http.MethodGet, networkAPIPrefix+"/floatingips", query, nil, "floatingips", &fips)
	if err != nil {
		return nil, err
	}
	return fips, nil
}

// CreateFloatingIP allocates a floating IP with the given attributes
func (c *NetworkClient) CreateFloatingIP(ctx context.Context, attrs models.Attrs) (*models.FloatingIP, error) {
	var fip models.FloatingIP
	body := map[string]interface{}{"floatingip": attrs}
	err := c.session.requestKeyed(ctx, config.ServiceNetwork, http.MethodPost, networkAPIPrefix+"/floatingips", nil, body, "floatingip", &fip)
	if err != nil {
		return nil, err
	}
	return &fip, nil
}

// UpdateFloatingIP changes the given attributes of a floating IP
func (c *NetworkClient) UpdateFloatingIP(ctx context.Context, id string, attrs models.Attrs) (*models.FloatingIP, error) {
	var fip models.FloatingIP
	body := map[string]interface{}{"floatingip": attrs}
	err := c.session.requestKeyed(ctx, config.ServiceNetwork, http.MethodPut, c.floatingIPPath(id), nil, body, "floatingip", &fip)
	if err != nil {
		return nil, err
	}
	return &fip, nil
}

// DeleteFloatingIP releases a floating IP
func (c *NetworkClient) DeleteFloatingIP(ctx context.Context, id string) error {
	return c.session.request(ctx, config.ServiceNetwork, http.MethodDelete, c.floatingIPPath(id), nil, nil, nil)
}

// FindNetwork resolves a network name or ID
func (c *NetworkClient) FindNetwork(ctx context.Context, nameOrID string) (*models.Network, error) {
	return findNamed[models.Network](ctx, c.session, c.lookup("network", "networks"), nameOrID)
}

// FindSubnet resolves a subnet name or ID
func (c *NetworkClient) FindSubnet(ctx context.Context, nameOrID string) (*models.Subnet, error) {
	return findNamed[models.Subnet](ctx, c.session, c.lookup("subnet", "subnets"), nameOrID)
}

// FindPort resolves a port name or ID
func (c *NetworkClient) FindPort(ctx context.Context, nameOrID string) (*models.Port, error) {
	return findNamed[models.Port](ctx, c.session, c.lookup("port", "ports"), nameOrID)
}

// FindRouter resolves a router name or ID
func (c *NetworkClient) FindRouter(ctx context.Context, nameOrID string) (*models.Router, error) {
	return findNamed[models.Router](ctx, c.session, c.lookup("router", "routers"), nameOrID)
}

func (c *NetworkClient) lookup(member, plural string) lookup {
	return lookup{
		service:  config.ServiceNetwork,
		resource: member,
		path:     networkAPIPrefix + "/" + plural,
		member:   member,
		plural:   plural,
	}
}
