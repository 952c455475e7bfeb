// Package openstack is a thin REST client for the network, compute and
// identity services of an OpenStack style control plane.
package openstack

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/younsl/cloudctl/internal/config"
	"github.com/younsl/cloudctl/internal/version"
)

// Timing records how long one API call took
type Timing struct {
	Method   string
	URL      string
	Duration time.Duration
}

// Session is an authenticated connection to one cloud. It is used by a
// single command invocation and is not safe for concurrent use.
type Session struct {
	client    *resty.Client
	endpoints map[string]string
	enabled   mapset.Set[string]
	log       *log.Entry
	timings   []Timing
}

// NewSession creates a session for the given cloud
func NewSession(cloud *config.Cloud, logger *log.Entry) *Session {
	s := &Session{
		endpoints: make(map[string]string),
		enabled:   mapset.NewThreadUnsafeSet[string](),
		log:       logger,
	}

	for _, service := range []string{config.ServiceNetwork, config.ServiceCompute, config.ServiceIdentity} {
		if endpoint := cloud.Endpoints.ForService(service); endpoint != "" {
			s.endpoints[service] = strings.TrimRight(endpoint, "/")
			s.enabled.Add(service)
		}
	}

	s.client = resty.New().
		SetTimeout(cloud.TimeoutDuration()).
		SetRetryCount(cloud.Retries).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", version.UserAgent()).
		SetHeader("X-Auth-Token", cloud.Auth.Token).
		OnAfterResponse(s.recordTiming)

	if cloud.Insecure {
		s.client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return s
}

// IsServiceEnabled reports whether the cloud exposes an endpoint for service
func (s *Session) IsServiceEnabled(service string) bool {
	return s.enabled.Contains(service)
}

// Timings returns the API calls made so far, in order
func (s *Session) Timings() []Timing {
	return s.timings
}

func (s *Session) recordTiming(_ *resty.Client, resp *resty.Response) error {
	t := Timing{Duration: resp.Time()}
	if resp.Request != nil {
		t.Method = resp.Request.Method
		t.URL = resp.Request.URL
		if resp.Request.RawRequest != nil {
			t.URL = resp.Request.RawRequest.URL.String()
		}
	}
	s.timings = append(s.timings, t)
	return nil
}

// request issues one call against service and decodes the JSON response into
// result when result is non-nil
func (s *Session) request(ctx context.Context, service, method, path string, query url.Values, body, result interface{}) error {
	base, ok := s.endpoints[service]
	if !ok {
		return errors.Errorf("no %s endpoint is configured for this cloud", service)
	}
	reqURL := base + path

	requestID := "req-" + uuid.NewString()
	logger := s.log.WithField("request_id", requestID)

	req := s.client.R().
		SetContext(ctx).
		SetHeader("X-Openstack-Request-Id", requestID)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	logger.Debugf("REQ: %s %s", method, reqURL)
	resp, err := req.Execute(method, reqURL)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, reqURL)
	}
	logger.Debugf("RESP: %s (%s)", resp.Status(), humanize.Bytes(uint64(len(resp.Body()))))

	if resp.IsError() {
		return newAPIError(resp)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return errors.Wrapf(err, "decoding response of %s %s", method, reqURL)
	}
	return nil
}

// getOne fetches path and decodes the object stored under key
func (s *Session) getOne(ctx context.Context, service, path, key string, out interface{}) error {
	return s.requestKeyed(ctx, service, http.MethodGet, path, nil, nil, key, out)
}

// requestKeyed issues a call whose response wraps the payload in a single key,
// e.g. {"floatingip": {...}}
func (s *Session) requestKeyed(ctx context.Context, service, method, path string, query url.Values, body interface{}, key string, out interface{}) error {
	var envelope map[string]json.RawMessage
	if err := s.request(ctx, service, method, path, query, body, &envelope); err != nil {
		return err
	}
	raw, ok := envelope[key]
	if !ok {
		return errors.Errorf("response of %s %s has no %q member", method, path, key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decoding %q", key)
	}
	return nil
}
