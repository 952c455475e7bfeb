// Package testutil provides an in-process fake of the network, compute and
// identity services for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/younsl/cloudctl/internal/config"
)

// Record is one resource object as the fake stores and returns it
type Record = map[string]interface{}

// Call is one request received by the fake
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   Record
}

// FakeCloud serves the subset of the network, compute and identity APIs the
// floating IP commands use
type FakeCloud struct {
	Server *httptest.Server

	// ForbidIdentity makes every identity call fail with 403
	ForbidIdentity bool

	mu                 sync.Mutex
	calls              []Call
	floatingIPs        []Record
	computeFloatingIPs []Record
	pools              []string
	collections        map[string][]Record // keyed by collection path, e.g. /network/v2.0/networks
	nextAddress        int
}

// NewFakeCloud starts a fake cloud that is shut down when the test ends
func NewFakeCloud(t testing.TB) *FakeCloud {
	t.Helper()

	f := &FakeCloud{
		collections: map[string][]Record{},
		nextAddress: 10,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /network/v2.0/floatingips", f.listFloatingIPs)
	mux.HandleFunc("POST /network/v2.0/floatingips", f.createFloatingIP)
	mux.HandleFunc("GET /network/v2.0/floatingips/{id}", f.getFloatingIP)
	mux.HandleFunc("PUT /network/v2.0/floatingips/{id}", f.updateFloatingIP)
	mux.HandleFunc("DELETE /network/v2.0/floatingips/{id}", f.deleteFloatingIP)

	mux.HandleFunc("GET /compute/v2.1/os-floating-ips", f.listComputeFloatingIPs)
	mux.HandleFunc("POST /compute/v2.1/os-floating-ips", f.createComputeFloatingIP)
	mux.HandleFunc("GET /compute/v2.1/os-floating-ips/{id}", f.getComputeFloatingIP)
	mux.HandleFunc("DELETE /compute/v2.1/os-floating-ips/{id}", f.deleteComputeFloatingIP)
	mux.HandleFunc("GET /compute/v2.1/os-floating-ip-pools", f.listPools)

	for _, c := range []struct{ path, member, plural string }{
		{"/network/v2.0/networks", "network", "networks"},
		{"/network/v2.0/subnets", "subnet", "subnets"},
		{"/network/v2.0/ports", "port", "ports"},
		{"/network/v2.0/routers", "router", "routers"},
		{"/identity/v3/projects", "project", "projects"},
		{"/identity/v3/domains", "domain", "domains"},
	} {
		mux.HandleFunc("GET "+c.path, f.listCollection(c.path, c.plural))
		mux.HandleFunc("GET "+c.path+"/{id}", f.getFromCollection(c.path, c.member))
	}

	f.Server = httptest.NewServer(f.record(mux))
	t.Cleanup(f.Server.Close)
	return f
}

// Cloud returns a cloud configuration pointing at the fake. With no services
// given, every service is enabled.
func (f *FakeCloud) Cloud(services ...string) *config.Cloud {
	if len(services) == 0 {
		services = []string{config.ServiceNetwork, config.ServiceCompute, config.ServiceIdentity}
	}

	cloud := &config.Cloud{
		Name:      "fake",
		Auth:      config.Auth{Token: "fake-token"},
		Interface: "public",
		Timeout:   5,
	}
	for _, service := range services {
		switch service {
		case config.ServiceNetwork:
			cloud.Endpoints.Network = f.Server.URL + "/network"
		case config.ServiceCompute:
			cloud.Endpoints.Compute = f.Server.URL + "/compute/v2.1"
		case config.ServiceIdentity:
			cloud.Endpoints.Identity = f.Server.URL + "/identity/v3"
		}
	}
	return cloud
}

// AddFloatingIP stores a network floating IP, filling in the ID and address
// when missing, and returns the stored record
func (f *FakeCloud) AddFloatingIP(rec Record) Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addFloatingIP(rec)
}

func (f *FakeCloud) addFloatingIP(rec Record) Record {
	stored := Record{
		"id":                  uuid.NewString(),
		"floating_ip_address": f.allocateAddress(),
		"fixed_ip_address":    nil,
		"floating_network_id": "",
		"port_id":             nil,
		"router_id":           nil,
		"status":              "DOWN",
		"description":         "",
		"tenant_id":           "demo-project",
		"project_id":          "demo-project",
		"tags":                []interface{}{},
	}
	for k, v := range rec {
		stored[k] = v
	}
	f.floatingIPs = append(f.floatingIPs, stored)
	return stored
}

// AddComputeFloatingIP stores a compute floating IP and returns the stored record
func (f *FakeCloud) AddComputeFloatingIP(rec Record) Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addComputeFloatingIP(rec)
}

func (f *FakeCloud) addComputeFloatingIP(rec Record) Record {
	stored := Record{
		"id":          uuid.NewString(),
		"ip":          f.allocateAddress(),
		"fixed_ip":    nil,
		"instance_id": nil,
		"pool":        "public",
	}
	for k, v := range rec {
		stored[k] = v
	}
	f.computeFloatingIPs = append(f.computeFloatingIPs, stored)
	return stored
}

// AddPool registers a compute floating IP pool
func (f *FakeCloud) AddPool(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pools = append(f.pools, name)
}

// AddNetwork stores a network with the given ID and name
func (f *FakeCloud) AddNetwork(id, name string) {
	f.add("/network/v2.0/networks", Record{"id": id, "name": name, "status": "ACTIVE", "router:external": true})
}

// AddSubnet stores a subnet with the given ID and name
func (f *FakeCloud) AddSubnet(id, name string) {
	f.add("/network/v2.0/subnets", Record{"id": id, "name": name})
}

// AddPort stores a port with the given ID and name
func (f *FakeCloud) AddPort(id, name string) {
	f.add("/network/v2.0/ports", Record{"id": id, "name": name})
}

// AddRouter stores a router with the given ID and name
func (f *FakeCloud) AddRouter(id, name string) {
	f.add("/network/v2.0/routers", Record{"id": id, "name": name, "status": "ACTIVE"})
}

// AddDomain stores an identity domain
func (f *FakeCloud) AddDomain(id, name string) {
	f.add("/identity/v3/domains", Record{"id": id, "name": name, "enabled": true})
}

// AddProject stores an identity project owned by domainID
func (f *FakeCloud) AddProject(id, name, domainID string) {
	f.add("/identity/v3/projects", Record{"id": id, "name": name, "domain_id": domainID, "enabled": true})
}

func (f *FakeCloud) add(collection string, rec Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collections[collection] = append(f.collections[collection], rec)
}

// FloatingIPs returns a copy of the stored network floating IPs
func (f *FakeCloud) FloatingIPs() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.floatingIPs...)
}

// ComputeFloatingIPs returns a copy of the stored compute floating IPs
func (f *FakeCloud) ComputeFloatingIPs() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.computeFloatingIPs...)
}

// Calls returns every request received so far
func (f *FakeCloud) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Count returns how many requests were made with method to exactly path
func (f *FakeCloud) Count(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// LastBody returns the decoded body of the last request made with method
// to path, or nil
func (f *FakeCloud) LastBody(method, path string) Record {
	calls := f.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == path {
			return calls[i].Body
		}
	}
	return nil
}

func (f *FakeCloud) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := Call{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&call.Body); err != nil {
				writeError(w, http.StatusBadRequest, "BadRequest", err.Error())
				return
			}
		}

		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		if f.ForbidIdentity && strings.HasPrefix(r.URL.Path, "/identity/") {
			writeError(w, http.StatusForbidden, "Forbidden", "You are not authorized to perform the requested action.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allocateAddress returns the next unused address; callers hold f.mu
func (f *FakeCloud) allocateAddress() string {
	f.nextAddress++
	return fmt.Sprintf("172.24.4.%d", f.nextAddress)
}

func (f *FakeCloud) listFloatingIPs(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, Record{"floatingips": filter(f.floatingIPs, r.URL.Query())})
}

func (f *FakeCloud) getFloatingIP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, rec := findByID(f.floatingIPs, r.PathValue("id")); rec != nil {
		writeJSON(w, http.StatusOK, Record{"floatingip": rec})
		return
	}
	notFound(w, "FloatingIPNotFound", "Floating IP "+r.PathValue("id")+" could not be found")
}

func (f *FakeCloud) createFloatingIP(w http.ResponseWriter, r *http.Request) {
	attrs, ok := f.bodyMember(r, "floatingip")
	if !ok {
		writeError(w, http.StatusBadRequest, "BadRequest", "missing floatingip")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if tenant, ok := attrs["tenant_id"]; ok {
		attrs["project_id"] = tenant
	}
	writeJSON(w, http.StatusCreated, Record{"floatingip": f.addFloatingIP(attrs)})
}

func (f *FakeCloud) updateFloatingIP(w http.ResponseWriter, r *http.Request) {
	attrs, ok := f.bodyMember(r, "floatingip")
	if !ok {
		writeError(w, http.StatusBadRequest, "BadRequest", "missing floatingip")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	_, rec := findByID(f.floatingIPs, r.PathValue("id"))
	if rec == nil {
		notFound(w, "FloatingIPNotFound", "Floating IP "+r.PathValue("id")+" could not be found")
		return
	}
	for k, v := range attrs {
		rec[k] = v
	}
	writeJSON(w, http.StatusOK, Record{"floatingip": rec})
}

func (f *FakeCloud) deleteFloatingIP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, rec := findByID(f.floatingIPs, r.PathValue("id"))
	if rec == nil {
		notFound(w, "FloatingIPNotFound", "Floating IP "+r.PathValue("id")+" could not be found")
		return
	}
	f.floatingIPs = append(f.floatingIPs[:i], f.floatingIPs[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeCloud) listComputeFloatingIPs(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, Record{"floating_ips": f.computeFloatingIPs})
}

func (f *FakeCloud) getComputeFloatingIP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, rec := findByID(f.computeFloatingIPs, r.PathValue("id")); rec != nil {
		writeJSON(w, http.StatusOK, Record{"floating_ip": rec})
		return
	}
	computeNotFound(w, "Floating IP not found for ID "+r.PathValue("id"))
}

func (f *FakeCloud) createComputeFloatingIP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var pool string
	if body := f.calls[len(f.calls)-1].Body; body != nil {
		pool, _ = body["pool"].(string)
	}
	known := false
	for _, p := range f.pools {
		known = known || p == pool
	}
	if !known {
		computeNotFound(w, "Floating IP pool not found.")
		return
	}
	writeJSON(w, http.StatusOK, Record{"floating_ip": f.addComputeFloatingIP(Record{"pool": pool})})
}

func (f *FakeCloud) deleteComputeFloatingIP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, rec := findByID(f.computeFloatingIPs, r.PathValue("id"))
	if rec == nil {
		computeNotFound(w, "Floating IP not found for ID "+r.PathValue("id"))
		return
	}
	f.computeFloatingIPs = append(f.computeFloatingIPs[:i], f.computeFloatingIPs[i+1:]...)
	w.WriteHeader(http.StatusAccepted)
}

func (f *FakeCloud) listPools(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pools := make([]Record, 0, len(f.pools))
	for _, p := range f.pools {
		pools = append(pools, Record{"name": p})
	}
	writeJSON(w, http.StatusOK, Record{"floating_ip_pools": pools})
}

func (f *FakeCloud) listCollection(path, plural string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, Record{plural: filter(f.collections[path], r.URL.Query())})
	}
}

func (f *FakeCloud) getFromCollection(path, member string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, rec := findByID(f.collections[path], r.PathValue("id")); rec != nil {
			writeJSON(w, http.StatusOK, Record{member: rec})
			return
		}
		notFound(w, "NotFound", "Could not find "+member+": "+r.PathValue("id"))
	}
}

// bodyMember returns the object stored under key in the body of the request
// being served
func (f *FakeCloud) bodyMember(r *http.Request, key string) (Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		c := f.calls[i]
		if c.Method == r.Method && c.Path == r.URL.Path {
			member, ok := c.Body[key].(map[string]interface{})
			if !ok {
				return nil, false
			}
			copied := Record{}
			for k, v := range member {
				copied[k] = v
			}
			return copied, true
		}
	}
	return nil, false
}

func findByID(recs []Record, id string) (int, Record) {
	for i, rec := range recs {
		if rec["id"] == id {
			return i, rec
		}
	}
	return -1, nil
}

// filter keeps the records whose attributes equal every query parameter
func filter(recs []Record, query url.Values) []Record {
	out := []Record{}
	for _, rec := range recs {
		keep := true
		for key := range query {
			if fmt.Sprint(rec[key]) != query.Get(key) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, Record{"NeutronError": Record{"type": kind, "message": message, "detail": ""}})
}

func notFound(w http.ResponseWriter, kind, message string) {
	writeError(w, http.StatusNotFound, kind, message)
}

func computeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Record{"itemNotFound": Record{"code": 404, "message": message}})
}
