package models

// Resource carries the identity fields shared by named network and identity resources
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetID returns the resource ID
func (r Resource) GetID() string { return r.ID }

// GetName returns the resource name
func (r Resource) GetName() string { return r.Name }

// Named is implemented by every resource that can be looked up by name or ID
type Named interface {
	GetID() string
	GetName() string
}

// Network represents a network, the pool floating IPs are allocated from
type Network struct {
	Resource
	Status   string `json:"status"`
	External bool   `json:"router:external"`
}

// Subnet represents a subnet of a network
type Subnet struct {
	Resource
	NetworkID string `json:"network_id"`
	CIDR      string `json:"cidr"`
}

// Port represents a network port a floating IP can be associated with
type Port struct {
	Resource
	NetworkID string `json:"network_id"`
	DeviceID  string `json:"device_id"`
}

// Router represents a router that hosts floating IP NAT
type Router struct {
	Resource
	Status string `json:"status"`
}
