package floatingip

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	validationis "github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
)

// Statuses accepted by the --status filter
var validStatuses = []interface{}{"ACTIVE", "DOWN"}

// CreateOptions holds the parsed arguments of floating ip create. Pointer
// fields distinguish "not given" from an empty value.
type CreateOptions struct {
	Network           *string `json:"network"`
	Subnet            string  `json:"subnet"`
	Port              string  `json:"port"`
	FloatingIPAddress string  `json:"floating-ip-address"`
	FixedIPAddress    string  `json:"fixed-ip-address"`
	Description       *string `json:"description"`
	Project           string  `json:"project"`
	ProjectDomain     string  `json:"project-domain"`
}

// Validate checks the syntax of the options without contacting any service
func (o *CreateOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Network, validation.NotNil.Error("a network is required")),
		validation.Field(&o.FloatingIPAddress, validationis.IP),
		validation.Field(&o.FixedIPAddress, validationis.IP),
	)
}

// networkOnly returns the flags given that only the network service understands
func (o *CreateOptions) networkOnly() []string {
	return setFlags(map[string]bool{
		"--subnet":              o.Subnet != "",
		"--port":                o.Port != "",
		"--floating-ip-address": o.FloatingIPAddress != "",
		"--fixed-ip-address":    o.FixedIPAddress != "",
		"--description":         o.Description != nil,
		"--project":             o.Project != "",
		"--project-domain":      o.ProjectDomain != "",
	})
}

// ListOptions holds the parsed arguments of floating ip list
type ListOptions struct {
	Network        *string `json:"network"`
	Port           *string `json:"port"`
	FixedIPAddress *string `json:"fixed-ip-address"`
	Long           bool    `json:"long"`
	Status         string  `json:"status"`
	Project        *string `json:"project"`
	ProjectDomain  string  `json:"project-domain"`
	Router         *string `json:"router"`
}

// Validate checks the syntax of the options without contacting any service
func (o *ListOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Status, validation.In(validStatuses...).Error("must be one of ACTIVE, DOWN")),
	)
}

func (o *ListOptions) networkOnly() []string {
	return setFlags(map[string]bool{
		"--network":          o.Network != nil,
		"--port":             o.Port != nil,
		"--fixed-ip-address": o.FixedIPAddress != nil,
		"--long":             o.Long,
		"--status":           o.Status != "",
		"--project":          o.Project != nil,
		"--project-domain":   o.ProjectDomain != "",
		"--router":           o.Router != nil,
	})
}

// SetOptions holds the parsed arguments of floating ip set
type SetOptions struct {
	Port           *string `json:"port"`
	FixedIPAddress *string `json:"fixed-ip-address"`
	Description    *string `json:"description"`
}

// Validate checks the syntax of the options without contacting any service
func (o *SetOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.FixedIPAddress,
			validationis.IP,
			validation.When(o.Port == nil, validation.Nil.Error("requires --port"))),
	)
}

// UnsetOptions holds the parsed arguments of floating ip unset
type UnsetOptions struct {
	Port bool `json:"port"`
}

func setFlags(given map[string]bool) []string {
	flags := lo.Keys(lo.PickBy(given, func(_ string, set bool) bool { return set }))
	slices.Sort(flags)
	return flags
}

func networkOnlyError(flags []string) error {
	return fmt.Errorf("%s: only supported by the network service", strings.Join(flags, ", "))
}
