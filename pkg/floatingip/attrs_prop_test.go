//go:build property_test

package floatingip

import (
	"context"
	"maps"
	"net/url"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/younsl/cloudctl/internal/models"
)

// resolver resolves every reference to a deterministic ID
type resolver struct{}

func (resolver) GetFloatingIP(context.Context, string) (*models.FloatingIP, error) { return nil, nil }
func (resolver) ListFloatingIPs(context.Context, url.Values) ([]models.FloatingIP, error) {
	return nil, nil
}
func (resolver) CreateFloatingIP(context.Context, models.Attrs) (*models.FloatingIP, error) {
	return nil, nil
}
func (resolver) UpdateFloatingIP(context.Context, string, models.Attrs) (*models.FloatingIP, error) {
	return nil, nil
}
func (resolver) DeleteFloatingIP(context.Context, string) error { return nil }

func (resolver) FindNetwork(_ context.Context, name string) (*models.Network, error) {
	return &models.Network{Resource: models.Resource{ID: "net-" + name, Name: name}}, nil
}
func (resolver) FindSubnet(_ context.Context, name string) (*models.Subnet, error) {
	return &models.Subnet{Resource: models.Resource{ID: "sub-" + name, Name: name}}, nil
}
func (resolver) FindPort(_ context.Context, name string) (*models.Port, error) {
	return &models.Port{Resource: models.Resource{ID: "port-" + name, Name: name}}, nil
}
func (resolver) FindRouter(_ context.Context, name string) (*models.Router, error) {
	return &models.Router{Resource: models.Resource{ID: "router-" + name, Name: name}}, nil
}
func (resolver) FindProject(_ context.Context, name, domain string) (*models.Project, error) {
	return &models.Project{Resource: models.Resource{ID: "proj-" + name + "@" + domain, Name: name}}, nil
}

// Each clearable create option and the payload key it controls
var createOptionKeys = []struct {
	key   string
	clear func(*CreateOptions)
}{
	{"floating_network_id", func(o *CreateOptions) { o.Network = nil }},
	{"subnet_id", func(o *CreateOptions) { o.Subnet = "" }},
	{"port_id", func(o *CreateOptions) { o.Port = "" }},
	{"floating_ip_address", func(o *CreateOptions) { o.FloatingIPAddress = "" }},
	{"fixed_ip_address", func(o *CreateOptions) { o.FixedIPAddress = "" }},
	{"description", func(o *CreateOptions) { o.Description = nil }},
	{"tenant_id", func(o *CreateOptions) { o.Project = "" }},
}

func TestBuildCreateAttrsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	optionsGen := gen.Struct(reflect.TypeOf(CreateOptions{}), map[string]gopter.Gen{
		"Network":           gen.PtrOf(gen.AlphaString()),
		"Subnet":            gen.AlphaString(),
		"Port":              gen.AlphaString(),
		"FloatingIPAddress": gen.AlphaString(),
		"FixedIPAddress":    gen.AlphaString(),
		"Description":       gen.PtrOf(gen.AlphaString()),
		"Project":           gen.AlphaString(),
		"ProjectDomain":     gen.AlphaString(),
	})

	properties.Property("clearing one option drops only its key", prop.ForAll(
		func(opts CreateOptions, which int) bool {
			field := createOptionKeys[which]
			cleared := opts
			field.clear(&cleared)

			full, err := BuildCreateAttrs(context.Background(), resolver{}, resolver{}, opts)
			if err != nil {
				return false
			}
			partial, err := BuildCreateAttrs(context.Background(), resolver{}, resolver{}, cleared)
			if err != nil {
				return false
			}

			want := maps.Clone(full)
			delete(want, field.key)
			return reflect.DeepEqual(want, partial)
		},
		optionsGen, gen.IntRange(0, len(createOptionKeys)-1)))

	properties.Property("the same options always build the same payload", prop.ForAll(
		func(opts CreateOptions) bool {
			first, err1 := BuildCreateAttrs(context.Background(), resolver{}, resolver{}, opts)
			second, err2 := BuildCreateAttrs(context.Background(), resolver{}, resolver{}, opts)
			return err1 == nil && err2 == nil && reflect.DeepEqual(first, second)
		},
		optionsGen))

	properties.TestingRun(t)
}
