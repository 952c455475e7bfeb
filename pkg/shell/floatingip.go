package shell

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/younsl/cloudctl/pkg/floatingip"
)

// FloatingIPCommands is the floating ip command group
var FloatingIPCommands = []Command{
	{
		Path:  []string{"floating", "ip", "create"},
		Use:   "<network>",
		Short: "Create floating IP",
		Args:  cobra.ExactArgs(1),
		Bind:  bindCreate,
	},
	{
		Path:  []string{"floating", "ip", "delete"},
		Use:   "<floating-ip> [<floating-ip> ...]",
		Short: "Delete floating IP(s)",
		Args:  cobra.MinimumNArgs(1),
		Bind:  bindDelete,
	},
	{
		Path:  []string{"floating", "ip", "list"},
		Short: "List floating IP(s)",
		Args:  cobra.NoArgs,
		Bind:  bindList,
	},
	{
		Path:  []string{"floating", "ip", "show"},
		Use:   "<floating-ip>",
		Short: "Display floating IP details",
		Args:  cobra.ExactArgs(1),
		Bind:  bindShow,
	},
	{
		Path:  []string{"floating", "ip", "set"},
		Use:   "<floating-ip>",
		Short: "Set floating IP properties",
		Args:  cobra.ExactArgs(1),
		Bind:  bindSet,
	},
	{
		Path:  []string{"floating", "ip", "unset"},
		Use:   "<floating-ip>",
		Short: "Unset floating IP properties",
		Args:  cobra.ExactArgs(1),
		Bind:  bindUnset,
	},
	{
		Path:  []string{"floating", "ip", "pool", "list"},
		Short: "List pools of floating IP addresses",
		Args:  cobra.NoArgs,
		Bind:  bindPoolList,
	},
}

// FloatingIPAliases are the deprecated ip floating spellings
var FloatingIPAliases = []Alias{
	{Path: []string{"ip", "floating", "create"}, Target: []string{"floating", "ip", "create"}, Warn: true},
	{Path: []string{"ip", "floating", "delete"}, Target: []string{"floating", "ip", "delete"}, Warn: true},
	{Path: []string{"ip", "floating", "list"}, Target: []string{"floating", "ip", "list"}, Warn: true},
	{Path: []string{"ip", "floating", "show"}, Target: []string{"floating", "ip", "show"}, Warn: true},
	{Path: []string{"ip", "floating", "pool", "list"}, Target: []string{"floating", "ip", "pool", "list"}, Warn: true},
}

// optional returns the value of a string flag, or nil when it was not given
func optional(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetString(name)
	return &v
}

func bindCreate(fs *pflag.FlagSet) Runner {
	var opts floatingip.CreateOptions
	fs.StringVar(&opts.Subnet, "subnet", "", "Subnet on which you want to create the floating IP (name or ID)")
	fs.StringVar(&opts.Port, "port", "", "Port to be associated with the floating IP (name or ID)")
	fs.StringVar(&opts.FloatingIPAddress, "floating-ip-address", "", "Floating IP address")
	fs.StringVar(&opts.FixedIPAddress, "fixed-ip-address", "", "Fixed IP address mapped to the floating IP")
	fs.String("description", "", "Set floating IP description")
	fs.StringVar(&opts.Project, "project", "", "Owner's project (name or ID)")
	fs.StringVar(&opts.ProjectDomain, "project-domain", "", "Domain the project belongs to (name or ID). This can be used in case collisions between project names exist.")

	return func(ctx context.Context, env *Env, args []string) error {
		opts.Network = &args[0]
		opts.Description = optional(fs, "description")

		backend, err := env.Backend()
		if err != nil {
			return err
		}
		item, err := backend.Create(ctx, opts)
		if err != nil {
			return err
		}
		return env.Printer.PrintItem(item.Columns, item.Values)
	}
}

func bindDelete(_ *pflag.FlagSet) Runner {
	return func(ctx context.Context, env *Env, args []string) error {
		backend, err := env.Backend()
		if err != nil {
			return err
		}
		return deleteAll(ctx, env, backend, args)
	}
}

func bindList(fs *pflag.FlagSet) Runner {
	var opts floatingip.ListOptions
	fs.String("network", "", "List floating IP(s) according to given network (name or ID)")
	fs.String("port", "", "List floating IP(s) according to given port (name or ID)")
	fs.String("fixed-ip-address", "", "List floating IP(s) according to given fixed IP address")
	fs.BoolVar(&opts.Long, "long", false, "List additional fields in output")
	fs.StringVar(&opts.Status, "status", "", "List floating IP(s) according to given status ('ACTIVE', 'DOWN')")
	fs.String("project", "", "List floating IP(s) according to given project (name or ID)")
	fs.StringVar(&opts.ProjectDomain, "project-domain", "", "Domain the project belongs to (name or ID). This can be used in case collisions between project names exist.")
	fs.String("router", "", "List floating IP(s) according to given router (name or ID)")

	return func(ctx context.Context, env *Env, _ []string) error {
		opts.Network = optional(fs, "network")
		opts.Port = optional(fs, "port")
		opts.FixedIPAddress = optional(fs, "fixed-ip-address")
		opts.Project = optional(fs, "project")
		opts.Router = optional(fs, "router")

		backend, err := env.Backend()
		if err != nil {
			return err
		}

		stop := env.startSpinner("Listing floating IPs ...")
		listing, err := backend.List(ctx, opts)
		stop()
		if err != nil {
			return err
		}
		return env.Printer.PrintList(listing.Headers, listing.Rows)
	}
}

func bindShow(_ *pflag.FlagSet) Runner {
	return func(ctx context.Context, env *Env, args []string) error {
		backend, err := env.Backend()
		if err != nil {
			return err
		}
		item, err := backend.Show(ctx, args[0])
		if err != nil {
			return err
		}
		return env.Printer.PrintItem(item.Columns, item.Values)
	}
}

func bindSet(fs *pflag.FlagSet) Runner {
	fs.String("port", "", "Associate the floating IP with port (name or ID)")
	fs.String("fixed-ip-address", "", "Fixed IP of the port (required only if port has multiple IPs)")
	fs.String("description", "", "Set floating IP description")

	return func(ctx context.Context, env *Env, args []string) error {
		opts := floatingip.SetOptions{
			Port:           optional(fs, "port"),
			FixedIPAddress: optional(fs, "fixed-ip-address"),
			Description:    optional(fs, "description"),
		}

		backend, err := env.Backend()
		if err != nil {
			return err
		}
		return floatingip.Set(ctx, backend, args[0], opts)
	}
}

func bindUnset(fs *pflag.FlagSet) Runner {
	var opts floatingip.UnsetOptions
	fs.BoolVar(&opts.Port, "port", false, "Disassociate any port associated with the floating IP")

	return func(ctx context.Context, env *Env, args []string) error {
		backend, err := env.Backend()
		if err != nil {
			return err
		}
		return floatingip.Unset(ctx, backend, args[0], opts)
	}
}

func bindPoolList(_ *pflag.FlagSet) Runner {
	return func(ctx context.Context, env *Env, _ []string) error {
		backend, err := env.Backend()
		if err != nil {
			return err
		}

		stop := env.startSpinner("Listing floating IP pools ...")
		listing, err := floatingip.ListPools(ctx, backend)
		stop()
		if err != nil {
			return err
		}
		return env.Printer.PrintList(listing.Headers, listing.Rows)
	}
}
