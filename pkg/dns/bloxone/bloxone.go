/*
Copyright 2025 The bloxone-acme-solver Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bloxone implements a DNS provider for solving the DNS-01 challenge
// using Infoblox BloxOne (Universal DDI) cloud DNS.
package bloxone

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	api "github.com/infobloxopen/bloxone-acme-solver/pkg/bloxone"
	"github.com/infobloxopen/bloxone-acme-solver/pkg/dns/util"
	logf "github.com/infobloxopen/bloxone-acme-solver/pkg/logs"
)

// defaultTTL is applied to every challenge TXT record.
const defaultTTL = 300

// DNSProvider is an implementation of the acme.ChallengeProvider interface.
// An instance services one challenge at a time; it is not safe for
// concurrent use.
type DNSProvider struct {
	dns01Nameservers []string
	client           *api.Client
	view             string
	ttl              int

	// pending holds the identifiers of records created by Present, in
	// creation order, until CleanUp removes them.
	pending []string
}

// NewDNSProvider returns a DNSProvider instance configured for BloxOne.
// Credentials must be passed in the environment variable INFOBLOX_API_KEY;
// INFOBLOX_VIEW and INFOBLOX_CSP_URL are optional.
func NewDNSProvider(dns01Nameservers []string) (*DNSProvider, error) {
	apiKey := os.Getenv("INFOBLOX_API_KEY")
	view := os.Getenv("INFOBLOX_VIEW")
	cspURL := os.Getenv("INFOBLOX_CSP_URL")
	return NewDNSProviderCredentials(apiKey, view, cspURL, dns01Nameservers)
}

// NewDNSProviderCredentials uses the supplied credentials to return a
// DNSProvider instance configured for BloxOne. A blank view falls back to
// the view named "default" at resolution time.
func NewDNSProviderCredentials(apiKey, view, cspURL string, dns01Nameservers []string) (*DNSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("BloxOne API key missing")
	}

	client, err := api.NewClient(api.Config{
		CSPURL:     cspURL,
		APIKey:     apiKey,
		ClientName: "bloxone-acme-solver",
	})
	if err != nil {
		return nil, err
	}

	return &DNSProvider{
		dns01Nameservers: dns01Nameservers,
		client:           client,
		view:             view,
		ttl:              defaultTTL,
	}, nil
}

// Timeout returns the timeout and interval to use when checking for DNS
// propagation. BloxOne serves records as soon as the create call returns, so
// a short wait covers the zone transfer to its edge.
func (c *DNSProvider) Timeout() (timeout, interval time.Duration) {
	return 10 * time.Second, 2 * time.Second
}

// Present creates a TXT record to fulfil the dns-01 challenge. A blank fqdn
// is computed from domain, following a CNAME on the challenge name. Each call
// creates exactly one record; the caller owns retry semantics and a retried
// call creates a second record with the same content.
func (c *DNSProvider) Present(ctx context.Context, domain, fqdn, value string) error {
	if fqdn == "" {
		fqdn, value = util.DNS01Record(domain, value, c.dns01Nameservers)
	}

	rec, err := c.buildRecord(ctx, domain, fqdn, value)
	if err != nil {
		return err
	}

	created, err := c.client.CreateRecord(ctx, rec)
	if err != nil {
		return err
	}

	logf.V(logf.DebugLevel).Infof("BLOXONE: created TXT record %q in zone %q -> %s", rec.Name, rec.Zone, created.ID)
	c.pending = append(c.pending, created.ID)
	return nil
}

// CleanUp removes every record created by earlier Present calls, in creation
// order. On a delete failure the already-deleted identifiers are dropped,
// the failing identifier and everything after it stay pending for a later
// CleanUp call, and the error is returned as-is.
func (c *DNSProvider) CleanUp(ctx context.Context, domain, fqdn, value string) error {
	if len(c.pending) == 0 {
		return nil
	}

	pending := c.pending
	for i, id := range pending {
		if err := c.client.DeleteRecord(ctx, id); err != nil {
			c.pending = append([]string(nil), pending[i:]...)
			return err
		}
		logf.V(logf.DebugLevel).Infof("BLOXONE: deleted TXT record %s", id)
	}

	c.pending = nil
	return nil
}

// CleanUpByLookup removes the challenge records matching fqdn and value by
// querying the record collection. It exists for callers that did not run
// Present in the same process, e.g. a cleanup hook started as a fresh
// binary.
func (c *DNSProvider) CleanUpByLookup(ctx context.Context, domain, fqdn, value string) error {
	if fqdn == "" {
		fqdn, value = util.DNS01Record(domain, value, c.dns01Nameservers)
	}

	name := util.UnFqdn(fqdn)
	records, err := c.client.ListRecords(ctx, fmt.Sprintf(`absolute_name_spec==%q and type=="TXT"`, name))
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.Rdata.Text != value {
			continue
		}
		if err := c.client.DeleteRecord(ctx, rec.ID); err != nil {
			return err
		}
		logf.V(logf.DebugLevel).Infof("BLOXONE: deleted TXT record %q -> %s", name, rec.ID)
	}
	return nil
}

// buildRecord resolves the configured view and the zone for domain and
// constructs the TXT record create body.
func (c *DNSProvider) buildRecord(ctx context.Context, domain, fqdn, value string) (*api.Record, error) {
	// The view must exist even though the create body does not carry it; a
	// missing view is an operator misconfiguration worth failing on early.
	// TODO: attach the resolved view id to the record body once the CSP
	// contract for view-scoped record creation is confirmed; until then the
	// record lands in the zone's own view.
	if _, err := c.resolveView(ctx); err != nil {
		return nil, err
	}

	zoneID, err := c.resolveZone(ctx, util.UnFqdn(domain))
	if err != nil {
		return nil, err
	}

	name := util.UnFqdn(fqdn)
	return &api.Record{
		Name:       name,
		Type:       "TXT",
		Rdata:      api.TXTRdata{Text: value},
		NameInZone: strings.SplitN(name, ".", 2)[0],
		Zone:       zoneID,
		TTL:        c.ttl,
		Comment:    fmt.Sprintf("%s: acme-dns-01 for %s", time.Now().Format("2006-01-02 15:04:05"), util.UnFqdn(domain)),
	}, nil
}

// resolveView returns the identifier of the configured view, or of the view
// literally named "default" when no view is configured.
func (c *DNSProvider) resolveView(ctx context.Context) (string, error) {
	viewName := c.view
	if viewName == "" {
		viewName = "default"
	}

	views, err := c.client.ListViews(ctx, fmt.Sprintf(`name==%q`, viewName), "full")
	if err != nil {
		return "", err
	}
	if len(views) == 0 || views[0].ID == "" {
		return "", &api.NotFoundError{Kind: "view", Name: viewName}
	}
	return views[0].ID, nil
}

// resolveZone returns the identifier of the authoritative zone for domain.
func (c *DNSProvider) resolveZone(ctx context.Context, domain string) (string, error) {
	zones, err := c.client.ListAuthZones(ctx, fmt.Sprintf(`fqdn==%q`, domain), "full")
	if err != nil {
		return "", err
	}
	if len(zones) == 0 {
		return "", &api.NotFoundError{Kind: "zone", Name: domain}
	}
	return zones[0].ID, nil
}
