package floatingip

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/younsl/cloudctl/internal/models"
	"github.com/younsl/cloudctl/pkg/locator"
)

// ComputeBackend runs floating IP commands against the floating IP API of
// the compute service
type ComputeBackend struct {
	api ComputeAPI
	log *log.Entry
}

// NewComputeBackend creates a new ComputeBackend
func NewComputeBackend(api ComputeAPI, logger *log.Entry) *ComputeBackend {
	return &ComputeBackend{api: api, log: logger}
}

// Kind implements Backend
func (b *ComputeBackend) Kind() Kind { return KindCompute }

// Create allocates a floating IP. The network argument names the pool.
func (b *ComputeBackend) Create(ctx context.Context, opts CreateOptions) (*Item, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if flags := opts.networkOnly(); len(flags) > 0 {
		return nil, networkOnlyError(flags)
	}

	fip, err := b.api.CreateFloatingIP(ctx, *opts.Network)
	if err != nil {
		return nil, err
	}
	b.log.WithField("id", fip.ID).Info("created floating IP")
	return computeItem(fip), nil
}

// List returns every floating IP of the project
func (b *ComputeBackend) List(ctx context.Context, opts ListOptions) (*Listing, error) {
	if flags := opts.networkOnly(); len(flags) > 0 {
		return nil, networkOnlyError(flags)
	}

	fips, err := b.api.ListFloatingIPs(ctx)
	if err != nil {
		return nil, err
	}

	return &Listing{
		Headers: computeListHeaders,
		Rows: rows(fips, func(fip *models.ComputeFloatingIP) []interface{} {
			return projectRow(fip.Info, computeListColumns)
		}),
	}, nil
}

// Show displays the floating IP identified by ID or address
func (b *ComputeBackend) Show(ctx context.Context, ident string) (*Item, error) {
	fip, _, _, err := locator.Find[models.ComputeFloatingIP](ctx, b.source(), locator.Cache[models.ComputeFloatingIP]{}, ident, false)
	if err != nil {
		return nil, err
	}
	return computeItem(&fip), nil
}

// Delete implements Backend
func (b *ComputeBackend) Delete(ctx context.Context, targets []string, report func(target string, err error) bool) {
	var cache locator.Cache[models.ComputeFloatingIP]
	for _, target := range targets {
		var err error
		cache, err = b.deleteOne(ctx, cache, target)
		if !report(target, err) {
			return
		}
	}
}

func (b *ComputeBackend) deleteOne(ctx context.Context, cache locator.Cache[models.ComputeFloatingIP], target string) (locator.Cache[models.ComputeFloatingIP], error) {
	fip, _, cache, err := locator.Find[models.ComputeFloatingIP](ctx, b.source(), cache, target, false)
	if err != nil {
		return cache, err
	}
	if err := b.api.DeleteFloatingIP(ctx, fip.ID); err != nil {
		return cache, err
	}
	b.log.WithField("id", fip.ID).Info("deleted floating IP")
	return cache, nil
}

// ListPools returns the pools floating IPs can be allocated from
func (b *ComputeBackend) ListPools(ctx context.Context) (*Listing, error) {
	pools, err := b.api.ListFloatingIPPools(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Headers: []string{"Name"},
		Rows: rows(pools, func(pool *models.FloatingIPPool) []interface{} {
			return []interface{}{pool.Name}
		}),
	}, nil
}

func (b *ComputeBackend) source() computeSource {
	return computeSource{api: b.api}
}
