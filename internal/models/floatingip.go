package models

import "encoding/json"

// Attrs is a flat mapping from API field name to value, used both for request
// payloads and for the attribute bag of network records
type Attrs map[string]interface{}

// FloatingIP represents a floating IP record returned by the network service
type FloatingIP struct {
	ID                string `json:"id"`
	FloatingIPAddress string `json:"floating_ip_address"`
	FixedIPAddress    string `json:"fixed_ip_address"`
	FloatingNetworkID string `json:"floating_network_id"`
	PortID            string `json:"port_id"`
	RouterID          string `json:"router_id"`
	ProjectID         string `json:"project_id"`
	TenantID          string `json:"tenant_id"`
	Status            string `json:"status"`
	Description       string `json:"description"`

	// Attributes holds every field the server returned, including the ones
	// without a typed counterpart above
	Attributes Attrs `json:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full attribute bag
func (f *FloatingIP) UnmarshalJSON(data []byte) error {
	type plain FloatingIP
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var attrs Attrs
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}

	*f = FloatingIP(p)
	f.Attributes = attrs
	if f.ProjectID == "" {
		f.ProjectID = f.TenantID
	}
	return nil
}

// Get returns the named attribute. project_id falls back to the legacy
// tenant_id key for servers that only report the latter.
func (a Attrs) Get(key string) interface{} {
	if v, ok := a[key]; ok && v != nil {
		return v
	}
	if key == "project_id" {
		if v, ok := a["tenant_id"]; ok {
			return v
		}
	}
	return a[key]
}

// Get returns the named attribute of the floating IP
func (f *FloatingIP) Get(key string) interface{} {
	return f.Attributes.Get(key)
}

// ComputeFloatingIP represents a floating IP as embedded in the legacy compute API
type ComputeFloatingIP struct {
	ID         string `mapstructure:"id"`
	IP         string `mapstructure:"ip"`
	FixedIP    string `mapstructure:"fixed_ip"`
	InstanceID string `mapstructure:"instance_id"`
	Pool       string `mapstructure:"pool"`

	// Info is the resource object exactly as the compute service returned it
	Info map[string]interface{} `mapstructure:"-"`
}

// FloatingIPPool represents a compute floating IP pool
type FloatingIPPool struct {
	Name string `json:"name"`
}
