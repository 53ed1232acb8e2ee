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

package bloxone

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthZone is an authoritative DNS zone. Only the fields the solver consumes
// are decoded.
type AuthZone struct {
	ID   string `json:"id,omitempty"`
	FQDN string `json:"fqdn,omitempty"`
}

// ListAuthZones returns the authoritative zones matching filter.
func (c *Client) ListAuthZones(ctx context.Context, filter, inherit string) ([]AuthZone, error) {
	raw, err := c.makeRequest(ctx, http.MethodGet, "/dns/auth_zone?"+listQuery(filter, inherit), nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Results []AuthZone `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}
