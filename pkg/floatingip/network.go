package floatingip

import (
	"context"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/younsl/cloudctl/internal/models"
	"github.com/younsl/cloudctl/pkg/locator"
)

// NetworkBackend runs floating IP commands against the network service
type NetworkBackend struct {
	api      NetworkAPI
	projects ProjectFinder
	log      *log.Entry
}

// NewNetworkBackend creates a new NetworkBackend
func NewNetworkBackend(api NetworkAPI, projects ProjectFinder, logger *log.Entry) *NetworkBackend {
	return &NetworkBackend{api: api, projects: projects, log: logger}
}

// Kind implements Backend
func (b *NetworkBackend) Kind() Kind { return KindNetwork }

// Create allocates a floating IP on the network named by opts
func (b *NetworkBackend) Create(ctx context.Context, opts CreateOptions) (*Item, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	attrs, err := BuildCreateAttrs(ctx, b.api, b.projects, opts)
	if err != nil {
		return nil, err
	}

	fip, err := b.api.CreateFloatingIP(ctx, attrs)
	if err != nil {
		return nil, err
	}
	b.log.WithField("id", fip.ID).Info("created floating IP")
	return networkItem(fip), nil
}

// List returns the floating IPs matching opts
func (b *NetworkBackend) List(ctx context.Context, opts ListOptions) (*Listing, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	columns, headers := networkListColumns, networkListHeaders
	if opts.Long {
		columns = slices.Concat(columns, networkLongColumns)
		headers = slices.Concat(headers, networkLongHeaders)
	}

	query, err := BuildListQuery(ctx, b.api, b.projects, opts)
	if err != nil {
		return nil, err
	}

	fips, err := b.api.ListFloatingIPs(ctx, query)
	if err != nil {
		return nil, err
	}

	return &Listing{
		Headers: headers,
		Rows: rows(fips, func(fip *models.FloatingIP) []interface{} {
			return projectRow(fip.Attributes, columns)
		}),
	}, nil
}

// Show displays the floating IP identified by ID or address
func (b *NetworkBackend) Show(ctx context.Context, ident string) (*Item, error) {
	fip, _, _, err := locator.Find[models.FloatingIP](ctx, b.source(), locator.Cache[models.FloatingIP]{}, ident, false)
	if err != nil {
		return nil, err
	}
	return networkItem(&fip), nil
}

// Delete implements Backend
func (b *NetworkBackend) Delete(ctx context.Context, targets []string, report func(target string, err error) bool) {
	var cache locator.Cache[models.FloatingIP]
	for _, target := range targets {
		var err error
		cache, err = b.deleteOne(ctx, cache, target)
		if !report(target, err) {
			return
		}
	}
}

func (b *NetworkBackend) deleteOne(ctx context.Context, cache locator.Cache[models.FloatingIP], target string) (locator.Cache[models.FloatingIP], error) {
	fip, _, cache, err := locator.Find[models.FloatingIP](ctx, b.source(), cache, target, false)
	if err != nil {
		return cache, err
	}
	if err := b.api.DeleteFloatingIP(ctx, fip.ID); err != nil {
		return cache, err
	}
	b.log.WithField("id", fip.ID).Info("deleted floating IP")
	return cache, nil
}

// Set changes the port association or description of a floating IP
func (b *NetworkBackend) Set(ctx context.Context, ident string, opts SetOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	fip, _, _, err := locator.Find[models.FloatingIP](ctx, b.source(), locator.Cache[models.FloatingIP]{}, ident, false)
	if err != nil {
		return err
	}

	attrs, err := BuildSetAttrs(ctx, b.api, opts)
	if err != nil {
		return err
	}
	return b.update(ctx, fip.ID, attrs)
}

// Unset clears the port association of a floating IP
func (b *NetworkBackend) Unset(ctx context.Context, ident string, opts UnsetOptions) error {
	fip, _, _, err := locator.Find[models.FloatingIP](ctx, b.source(), locator.Cache[models.FloatingIP]{}, ident, false)
	if err != nil {
		return err
	}
	return b.update(ctx, fip.ID, BuildUnsetAttrs(opts))
}

func (b *NetworkBackend) update(ctx context.Context, id string, attrs models.Attrs) error {
	if len(attrs) == 0 {
		b.log.WithField("id", id).Debug("nothing to update")
		return nil
	}
	if _, err := b.api.UpdateFloatingIP(ctx, id, attrs); err != nil {
		return err
	}
	b.log.WithField("id", id).Info("updated floating IP")
	return nil
}

func (b *NetworkBackend) source() networkSource {
	return networkSource{api: b.api}
}
