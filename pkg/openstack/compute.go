package openstack

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/models"
)

// ComputeClient struct for the floating IP API embedded in the compute service
type ComputeClient struct {
	session *Session
}

// NewComputeClient creates a new ComputeClient
func NewComputeClient(session *Session) *ComputeClient {
	return &ComputeClient{session: session}
}

// GetFloatingIP fetches a floating IP by ID
func (c *ComputeClient) GetFloatingIP(ctx context.Context, id string) (*models.ComputeFloatingIP, error) {
	if id == "" {
		return nil, errors.Wrap(ErrNotFound, "empty floating IP ID")
	}

	var info map[string]interface{}
	if err := c.session.getOne(ctx, config.ServiceCompute, "/os-floating-ips/"+url.PathEscape(id), "floating_ip", &info); err != nil {
		return nil, err
	}
	return decodeComputeFloatingIP(info)
}

// ListFloatingIPs returns every floating IP allocated to the project
func (c *ComputeClient) ListFloatingIPs(ctx context.Context) ([]models.ComputeFloatingIP, error) {
	var infos []map[string]interface{}
	if err := c.session.requestKeyed(ctx, config.ServiceCompute, http.MethodGet, "/os-floating-ips", nil, nil, "floating_ips", &infos); err != nil {
		return nil, err
	}

	fips := make([]models.ComputeFloatingIP, 0, len(infos))
	for _, info := range infos {
		fip, err := decodeComputeFloatingIP(info)
		if err != nil {
			return nil, err
		}
		fips = append(fips, *fip)
	}
	return fips, nil
}

// CreateFloatingIP allocates a floating IP from the named pool
func (c *ComputeClient) CreateFloatingIP(ctx context.Context, pool string) (*models.ComputeFloatingIP, error) {
	var info map[string]interface{}
	body := map[string]interface{}{"pool": pool}
	if err := c.session.requestKeyed(ctx, config.ServiceCompute, http.MethodPost, "/os-floating-ips", nil, body, "floating_ip", &info); err != nil {
		return nil, err
	}
	return decodeComputeFloatingIP(info)
}

// DeleteFloatingIP releases a floating IP
func (c *ComputeClient) DeleteFloatingIP(ctx context.Context, id string) error {
	return c.session.request(ctx, config.ServiceCompute, http.MethodDelete, "/os-floating-ips/"+url.PathEscape(id), nil, nil, nil)
}

// ListFloatingIPPools returns the pools floating IPs can be allocated from
func (c *ComputeClient) ListFloatingIPPools(ctx context.Context) ([]models.FloatingIPPool, error) {
	var pools []models.FloatingIPPool
	if err := c.session.requestKeyed(ctx, config.ServiceCompute, http.MethodGet, "/os-floating-ip-pools", nil, nil, "floating_ip_pools", &pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// decodeComputeFloatingIP builds the typed view of a compute floating IP
// while keeping the resource object it came from
func decodeComputeFloatingIP(info map[string]interface{}) (*models.ComputeFloatingIP, error) {
	fip := &models.ComputeFloatingIP{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           fip,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(info); err != nil {
		return nil, errors.Wrap(err, "decoding compute floating IP")
	}
	fip.Info = info
	return fip, nil
}
