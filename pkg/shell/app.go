package shell

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/logging"
	"github.com/younsl/cloudctl/internal/version"
	"github.com/younsl/cloudctl/pkg/floatingip"
	"github.com/younsl/cloudctl/pkg/formatter"
	"github.com/younsl/cloudctl/pkg/openstack"
)

// App is the cloudctl command line application. An App runs one command line.
type App struct {
	Out    io.Writer
	ErrOut io.Writer

	// Interactive enables terminal only decorations such as the spinner
	Interactive bool

	// LoadCloud reads the connection settings of the selected cloud
	LoadCloud func(opts config.LoadOptions) (*config.Cloud, error)

	opts    globalOptions
	env     Env
	session *openstack.Session
	backend floatingip.Backend
}

type globalOptions struct {
	cloud      string
	configFile string
	format     string
	timing     bool
	debug      bool
	verbose    bool
}

// NewApp creates an App writing to the process' standard streams
func NewApp(out, errOut io.Writer, interactive bool) *App {
	return &App{
		Out:         out,
		ErrOut:      errOut,
		Interactive: interactive,
		LoadCloud:   config.Load,
	}
}

// Execute parses args and runs the selected command
func (a *App) Execute(ctx context.Context, args []string) error {
	root, err := a.rootCommand()
	if err != nil {
		return err
	}
	root.SetArgs(args)

	err = root.ExecuteContext(ctx)

	if a.opts.timing && a.session != nil {
		formatter.PrintTimings(a.Out, a.session.Timings())
	}
	return err
}

func (a *App) rootCommand() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "cloudctl",
		Short: "Command-line client for cloud floating IPs",
		Long: `cloudctl manages floating IPs through the network service of a cloud,
or through the compute service's floating IP API where no network service is available.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.ErrOut)
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.cloud, "os-cloud", os.Getenv("OS_CLOUD"), "Cloud name in clouds.yaml (Env: OS_CLOUD)")
	flags.StringVar(&a.opts.configFile, "os-config-file", os.Getenv("OS_CLIENT_CONFIG_FILE"), "Path to clouds.yaml (Env: OS_CLIENT_CONFIG_FILE)")
	flags.StringVarP(&a.opts.format, "format", "f", string(formatter.FormatTable), "Output format: table, json, yaml, value or csv")
	flags.BoolVar(&a.opts.timing, "timing", false, "Print API call timing info")
	flags.BoolVar(&a.opts.debug, "debug", false, "Show tracebacks on errors and log every API call")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Increase verbosity of output")

	a.env = Env{Out: a.Out, ErrOut: a.ErrOut, Backend: a.selectBackend}
	if err := Build(root, &a.env, FloatingIPCommands, FloatingIPAliases); err != nil {
		return nil, err
	}
	return root, nil
}

// setup applies the global flags once they are parsed
func (a *App) setup() error {
	format, err := formatter.ParseFormat(a.opts.format)
	if err != nil {
		return err
	}

	logger := logging.New(a.ErrOut, logging.Options{Verbose: a.opts.verbose, Debug: a.opts.debug})
	a.env.Log = log.NewEntry(logger)
	a.env.Printer = formatter.New(a.Out, format)
	a.env.Spinner = a.Interactive && !a.opts.debug
	return nil
}

// selectBackend connects to the cloud on first use and picks the backend
func (a *App) selectBackend() (floatingip.Backend, error) {
	if a.backend != nil {
		return a.backend, nil
	}

	cloud, err := a.LoadCloud(config.LoadOptions{File: a.opts.configFile, Cloud: a.opts.cloud})
	if err != nil {
		return nil, err
	}

	logger := a.env.logEntry()
	a.session = openstack.NewSession(cloud, logger)
	clients := floatingip.Clients{
		Network:  openstack.NewNetworkClient(a.session),
		Compute:  openstack.NewComputeClient(a.session),
		Projects: openstack.NewIdentityClient(a.session),
	}

	backend, err := floatingip.SelectBackend(a.session, clients, logger)
	if err != nil {
		return nil, err
	}
	a.backend = backend
	return backend, nil
}
