package floatingip

import (
	"context"
	"errors"
	"fmt"
	"iter"

	log "github.com/sirupsen/logrus"

	"github.com/younsl/cloudctl/internal/config"
)

// Kind names the API generation a Backend talks to
type Kind string

const (
	KindNetwork Kind = "network"
	KindCompute Kind = "compute"
)

var (
	// ErrNoBackend is returned when the cloud exposes neither a network nor a compute service
	ErrNoBackend = errors.New("neither a network nor a compute service is available for this cloud")

	// ErrPoolsNeedCompute is returned by pool operations on the network backend
	ErrPoolsNeedCompute = errors.New("Floating ip pool operations are only available for Compute v2 network.")

	// ErrNeedsNetwork is returned by operations the compute backend does not support
	ErrNeedsNetwork = errors.New("this operation is only available with the network service")
)

// Listing is a header tuple plus a lazily produced sequence of rows
type Listing struct {
	Headers []string
	Rows    iter.Seq[[]interface{}]
}

// Backend runs the floating IP commands against one API generation. The two
// implementations are *NetworkBackend and *ComputeBackend.
type Backend interface {
	Kind() Kind
	Create(ctx context.Context, opts CreateOptions) (*Item, error)
	List(ctx context.Context, opts ListOptions) (*Listing, error)
	Show(ctx context.Context, ident string) (*Item, error)

	// Delete resolves and deletes targets in order, reporting the outcome of
	// each to report. Processing stops early when report returns false.
	Delete(ctx context.Context, targets []string, report func(target string, err error) bool)
}

// Clients bundles the service clients a backend may be built from
type Clients struct {
	Network  NetworkAPI
	Compute  ComputeAPI
	Projects ProjectFinder
}

// SelectBackend picks the backend for the active cloud: the network service
// when it is available, the compute service otherwise
func SelectBackend(probe ServiceProbe, clients Clients, logger *log.Entry) (Backend, error) {
	switch {
	case probe.IsServiceEnabled(config.ServiceNetwork):
		logger.Debug("using the network service for floating IPs")
		return NewNetworkBackend(clients.Network, clients.Projects, logger), nil
	case probe.IsServiceEnabled(config.ServiceCompute):
		logger.Debug("network service unavailable, using the compute floating IP API")
		return NewComputeBackend(clients.Compute, logger), nil
	}
	return nil, ErrNoBackend
}

// Set updates a floating IP. Only the network backend supports it.
func Set(ctx context.Context, b Backend, ident string, opts SetOptions) error {
	switch b := b.(type) {
	case *NetworkBackend:
		return b.Set(ctx, ident, opts)
	default:
		return fmt.Errorf("floating ip set: %w", ErrNeedsNetwork)
	}
}

// Unset clears properties of a floating IP. Only the network backend supports it.
func Unset(ctx context.Context, b Backend, ident string, opts UnsetOptions) error {
	switch b := b.(type) {
	case *NetworkBackend:
		return b.Unset(ctx, ident, opts)
	default:
		return fmt.Errorf("floating ip unset: %w", ErrNeedsNetwork)
	}
}

// ListPools lists the floating IP pools. Only the compute backend has pools.
func ListPools(ctx context.Context, b Backend) (*Listing, error) {
	switch b := b.(type) {
	case *ComputeBackend:
		return b.ListPools(ctx)
	default:
		return nil, ErrPoolsNeedCompute
	}
}

// rows adapts a slice to a row sequence
func rows[T any](records []T, row func(*T) []interface{}) iter.Seq[[]interface{}] {
	return func(yield func([]interface{}) bool) {
		for i := range records {
			if !yield(row(&records[i])) {
				return
			}
		}
	}
}
