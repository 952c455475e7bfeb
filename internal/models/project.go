package models

// Project represents an identity project (tenant)
type Project struct {
	Resource
	DomainID string `json:"domain_id"`
	Enabled  bool   `json:"enabled"`
}

// Domain represents an identity domain
type Domain struct {
	Resource
	Enabled bool `json:"enabled"`
}
