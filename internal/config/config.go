// Package config loads the connection settings of a cloud from a clouds.yaml
// style file and OS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Service types a cloud may expose an endpoint for
const (
	ServiceNetwork  = "network"
	ServiceCompute  = "compute"
	ServiceIdentity = "identity"
)

const (
	defaultInterface = "public"
	defaultTimeout   = 60
)

// envBindings maps cloud keys to the environment variables overriding them
var envBindings = map[string]string{
	"auth.token":         "OS_TOKEN",
	"endpoints.network":  "OS_NETWORK_ENDPOINT",
	"endpoints.compute":  "OS_COMPUTE_ENDPOINT",
	"endpoints.identity": "OS_IDENTITY_ENDPOINT",
	"region_name":        "OS_REGION_NAME",
	"interface":          "OS_INTERFACE",
	"insecure":           "OS_INSECURE",
	"timeout":            "OS_API_TIMEOUT",
	"retries":            "OS_API_RETRIES",
}

// Cloud holds everything needed to talk to one cloud
type Cloud struct {
	Name       string    `mapstructure:"-"`
	Auth       Auth      `mapstructure:"auth"`
	Endpoints  Endpoints `mapstructure:"endpoints"`
	RegionName string    `mapstructure:"region_name"`
	Interface  string    `mapstructure:"interface"`
	Insecure   bool      `mapstructure:"insecure"`
	Timeout    int       `mapstructure:"timeout"` // seconds
	Retries    int       `mapstructure:"retries"`
}

// Auth holds the credentials of a cloud
type Auth struct {
	Token string `mapstructure:"token"`
}

// Endpoints holds the base URL of each service
type Endpoints struct {
	Network  string `mapstructure:"network"`
	Compute  string `mapstructure:"compute"`
	Identity string `mapstructure:"identity"`
}

// ForService returns the endpoint configured for a service type, or ""
func (e Endpoints) ForService(service string) string {
	switch service {
	case ServiceNetwork:
		return e.Network
	case ServiceCompute:
		return e.Compute
	case ServiceIdentity:
		return e.Identity
	}
	return ""
}

// TimeoutDuration returns the per-request timeout
func (c *Cloud) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate checks that the cloud can be used to issue requests
func (c *Cloud) Validate() error {
	if c.Auth.Token == "" {
		return fmt.Errorf("cloud %q: no auth token configured (set auth.token or OS_TOKEN)", c.displayName())
	}
	if c.Endpoints.Network == "" && c.Endpoints.Compute == "" {
		return fmt.Errorf("cloud %q: neither a network nor a compute endpoint is configured", c.displayName())
	}
	if c.Timeout < 0 || c.Retries < 0 {
		return fmt.Errorf("cloud %q: timeout and retries must not be negative", c.displayName())
	}
	return nil
}

func (c *Cloud) displayName() string {
	if c.Name == "" {
		return "envvars"
	}
	return c.Name
}

// LoadOptions selects the file and cloud to load
type LoadOptions struct {
	// File is an explicit config file path; it must exist when set
	File string
	// Cloud names the entry under "clouds:"; empty means environment only
	Cloud string
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cloudctl", "clouds.yaml")
}

// Load reads the selected cloud, applies environment overrides and defaults,
// and validates the result
func Load(opts LoadOptions) (*Cloud, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	file := opts.File
	if file == "" {
		file = DefaultPath()
	}
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case opts.File == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)):
			// No default file is fine, the environment may carry everything
		default:
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	sub := viper.New()
	if opts.Cloud != "" {
		sub = v.Sub("clouds." + opts.Cloud)
		if sub == nil {
			return nil, fmt.Errorf("cloud %q not found in %s", opts.Cloud, file)
		}
	}

	for key, env := range envBindings {
		if err := sub.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}
	sub.SetDefault("interface", defaultInterface)
	sub.SetDefault("timeout", defaultTimeout)
	sub.SetDefault("retries", 0)

	var cloud Cloud
	if err := sub.Unmarshal(&cloud); err != nil {
		return nil, fmt.Errorf("decoding cloud %q: %w", opts.Cloud, err)
	}
	cloud.Name = opts.Cloud

	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	return &cloud, nil
}
