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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// TXTRdata is the record data of a TXT record.
type TXTRdata struct {
	Text string `json:"text"`
}

// Record is a DNS resource record in an authoritative zone.
type Record struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	NameInZone   string   `json:"name_in_zone,omitempty"`
	Type         string   `json:"type,omitempty"`
	Rdata        TXTRdata `json:"rdata"`
	Zone         string   `json:"zone,omitempty"`
	TTL          int      `json:"ttl,omitempty"`
	Comment      string   `json:"comment,omitempty"`
	AbsoluteName string   `json:"absolute_name_spec,omitempty"`
}

// ListRecords returns the resource records matching filter.
func (c *Client) ListRecords(ctx context.Context, filter string) ([]Record, error) {
	raw, err := c.makeRequest(ctx, http.MethodGet, "/dns/record?"+listQuery(filter, ""), nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Results []Record `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// CreateRecord creates rec and returns the stored record, including the
// identifier assigned by the portal.
func (c *Client) CreateRecord(ctx context.Context, rec *Record) (*Record, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	raw, err := c.makeRequest(ctx, http.MethodPost, "/dns/record", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var body struct {
		Result *Record `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body.Result == nil || body.Result.ID == "" {
		return nil, errors.New("create record response carries no record id")
	}
	return body.Result, nil
}

// DeleteRecord deletes the record with the given identifier. The response
// body is not consulted.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	// Record identifiers come back qualified, e.g. "dns/record/<uuid>";
	// the delete path wants only the trailing uuid.
	_, err := c.makeRequest(ctx, http.MethodDelete, "/dns/record/"+strings.TrimPrefix(id, "dns/record/"), nil)
	return err
}
