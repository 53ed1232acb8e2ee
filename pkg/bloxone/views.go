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
	"net/url"
)

// View is a DNS configuration partition. Only the fields the solver consumes
// are decoded.
type View struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ListViews returns the views matching filter. inherit controls inheritance
// expansion on the returned objects ("full" expands inherited values).
func (c *Client) ListViews(ctx context.Context, filter, inherit string) ([]View, error) {
	raw, err := c.makeRequest(ctx, http.MethodGet, "/dns/view?"+listQuery(filter, inherit), nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Results []View `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// listQuery encodes the common _filter/_inherit query parameters.
func listQuery(filter, inherit string) string {
	q := url.Values{}
	if filter != "" {
		q.Set("_filter", filter)
	}
	if inherit != "" {
		q.Set("_inherit", inherit)
	}
	return q.Encode()
}
