package openstack

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/models"
)

// IdentityClient struct for identity service client
type IdentityClient struct {
	session *Session
}

// NewIdentityClient creates a new IdentityClient
func NewIdentityClient(session *Session) *IdentityClient {
	return &IdentityClient{session: session}
}

// FindDomain resolves a domain name or ID.
//
// Users without permission to read domains can still name one by ID, so a
// Forbidden lookup yields a domain carrying the given value as ID and name.
func (c *IdentityClient) FindDomain(ctx context.Context, nameOrID string) (*models.Domain, error) {
	l := lookup{
		service:  config.ServiceIdentity,
		resource: "domain",
		path:     "/domains",
		member:   "domain",
		plural:   "domains",
	}

	domain, err := findNamed[models.Domain](ctx, c.session, l, nameOrID)
	if errors.Is(err, ErrForbidden) {
		c.session.log.Debugf("not allowed to look up domain %s, using it as an ID", nameOrID)
		return &models.Domain{Resource: models.Resource{ID: nameOrID, Name: nameOrID}}, nil
	}
	return domain, err
}

// FindProject resolves a project name or ID. A non-empty domain scopes the
// name lookup, which disambiguates identically named projects. Forbidden
// lookups degrade the same way as FindDomain.
func (c *IdentityClient) FindProject(ctx context.Context, nameOrID, domain string) (*models.Project, error) {
	l := lookup{
		service:  config.ServiceIdentity,
		resource: "project",
		path:     "/projects",
		member:   "project",
		plural:   "projects",
	}

	if domain != "" {
		d, err := c.FindDomain(ctx, domain)
		if err != nil {
			return nil, err
		}
		l.filters = url.Values{"domain_id": {d.ID}}
	}

	project, err := findNamed[models.Project](ctx, c.session, l, nameOrID)
	if errors.Is(err, ErrForbidden) {
		c.session.log.Debugf("not allowed to look up project %s, using it as an ID", nameOrID)
		return &models.Project{Resource: models.Resource{ID: nameOrID, Name: nameOrID}}, nil
	}
	return project, err
}
