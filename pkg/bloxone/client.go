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

// Package bloxone is a minimal client for the Infoblox BloxOne DDI REST API.
// It covers exactly the three resource collections the DNS-01 solver needs:
// DNS views, authoritative zones and resource records.
package bloxone

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultCSPURL is the production Infoblox Cloud Services Portal endpoint.
const DefaultCSPURL = "https://csp.infoblox.com"

// basePath is prepended to every collection path.
const basePath = "/api/ddi/v1"

// maxBodySize is the max size of a received response body. The value is
// arbitrary and is chosen to be large enough that any reasonable response
// would fit.
const maxBodySize = 1024 * 1024 // 1mb

// Config carries everything needed to talk to the CSP API.
type Config struct {
	// CSPURL overrides DefaultCSPURL, e.g. to target a staging portal.
	CSPURL string
	// APIKey is the BloxOne service API key.
	APIKey string
	// ClientName identifies the calling application to the portal.
	ClientName string
}

// Client is an authenticated handle on the CSP API. It is safe to construct
// eagerly; no connection is opened until the first call.
type Client struct {
	cspURL     string
	apiKey     string
	clientName string

	httpClient *http.Client
}

// NewClient validates cfg and returns a Client for it.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("BloxOne API key missing")
	}
	// The API key travels in the Authorization header. If the header value
	// is invalid the Go http library prints it out while debugging, so
	// reject values that would leak that way.
	if !validHeaderFieldValue(cfg.APIKey) {
		return nil, errors.New("the BloxOne API key is invalid (does the key contain a newline?)")
	}

	cspURL := cfg.CSPURL
	if cspURL == "" {
		cspURL = DefaultCSPURL
	}
	clientName := cfg.ClientName
	if clientName == "" {
		clientName = "bloxone-acme-solver"
	}

	return &Client{
		cspURL:     cspURL,
		apiKey:     cfg.APIKey,
		clientName: clientName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// makeRequest performs one authenticated call against the CSP API and returns
// the raw response body. Transport errors are returned untouched; non-2xx
// responses are decoded into an *APIError.
func (c *Client) makeRequest(ctx context.Context, method, uri string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cspURL+basePath+uri, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("x-infoblox-client", c.clientName)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(method, uri, resp.StatusCode, data)
	}

	return json.RawMessage(data), nil
}

// following functions are copy-pasted from go's internal
// http server
func validHeaderFieldValue(v string) bool {
	for i := 0; i < len(v); i++ {
		b := v[i]
		if isCTL(b) && !isLWS(b) {
			return false
		}
	}
	return true
}

func isCTL(b byte) bool {
	const del = 0x7f // a CTL
	return b < ' ' || b == del
}

func isLWS(b byte) bool { return b == ' ' || b == '\t' }
