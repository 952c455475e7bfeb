package floatingip

import (
	"context"
	"net/url"

	"github.com/younsl/cloudctl/internal/models"
)

// BuildCreateAttrs maps create options to the request body of a network
// floating IP. Only options the user gave contribute a key, and references
// (network, subnet, port, project) are resolved to IDs first.
func BuildCreateAttrs(ctx context.Context, network NetworkAPI, projects ProjectFinder, opts CreateOptions) (models.Attrs, error) {
	attrs := models.Attrs{}

	// A network may be named by the empty string
	if opts.Network != nil {
		n, err := network.FindNetwork(ctx, *opts.Network)
		if err != nil {
			return nil, err
		}
		attrs["floating_network_id"] = n.ID
	}

	if opts.Subnet != "" {
		subnet, err := network.FindSubnet(ctx, opts.Subnet)
		if err != nil {
			return nil, err
		}
		attrs["subnet_id"] = subnet.ID
	}

	if opts.Port != "" {
		port, err := network.FindPort(ctx, opts.Port)
		if err != nil {
			return nil, err
		}
		attrs["port_id"] = port.ID
	}

	if opts.FloatingIPAddress != "" {
		attrs["floating_ip_address"] = opts.FloatingIPAddress
	}
	if opts.FixedIPAddress != "" {
		attrs["fixed_ip_address"] = opts.FixedIPAddress
	}
	if opts.Description != nil {
		attrs["description"] = *opts.Description
	}

	if opts.Project != "" {
		project, err := projects.FindProject(ctx, opts.Project, opts.ProjectDomain)
		if err != nil {
			return nil, err
		}
		// The network service still takes the owner under its legacy name
		attrs["tenant_id"] = project.ID
	}

	return attrs, nil
}

// BuildSetAttrs maps set options to the body of a floating IP update
func BuildSetAttrs(ctx context.Context, network NetworkAPI, opts SetOptions) (models.Attrs, error) {
	attrs := models.Attrs{}

	if opts.Port != nil {
		port, err := network.FindPort(ctx, *opts.Port)
		if err != nil {
			return nil, err
		}
		attrs["port_id"] = port.ID
	}
	if opts.FixedIPAddress != nil {
		attrs["fixed_ip_address"] = *opts.FixedIPAddress
	}
	if opts.Description != nil {
		attrs["description"] = *opts.Description
	}

	return attrs, nil
}

// BuildUnsetAttrs maps unset options to the body of a floating IP update
func BuildUnsetAttrs(opts UnsetOptions) models.Attrs {
	attrs := models.Attrs{}
	if opts.Port {
		attrs["port_id"] = nil
	}
	return attrs
}

// BuildListQuery maps list options to network service query filters
func BuildListQuery(ctx context.Context, network NetworkAPI, projects ProjectFinder, opts ListOptions) (url.Values, error) {
	query := url.Values{}

	if opts.Network != nil {
		n, err := network.FindNetwork(ctx, *opts.Network)
		if err != nil {
			return nil, err
		}
		query.Set("floating_network_id", n.ID)
	}

	if opts.Port != nil {
		port, err := network.FindPort(ctx, *opts.Port)
		if err != nil {
			return nil, err
		}
		query.Set("port_id", port.ID)
	}

	if opts.FixedIPAddress != nil {
		query.Set("fixed_ip_address", *opts.FixedIPAddress)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	if opts.Project != nil {
		project, err := projects.FindProject(ctx, *opts.Project, opts.ProjectDomain)
		if err != nil {
			return nil, err
		}
		query.Set("tenant_id", project.ID)
		query.Set("project_id", project.ID)
	}

	if opts.Router != nil {
		router, err := network.FindRouter(ctx, *opts.Router)
		if err != nil {
			return nil, err
		}
		query.Set("router_id", router.ID)
	}

	return query, nil
}
