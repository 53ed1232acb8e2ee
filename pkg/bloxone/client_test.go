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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		CSPURL: server.URL,
		APIKey: "test-key",
	})
	require.NoError(t, err)
	return client, server
}

func TestNewClientMissingAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.EqualError(t, err, "BloxOne API key missing")
}

func TestNewClientInvalidAPIKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: "key-with\nnewline"})
	assert.Error(t, err)
}

func TestListViews(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ddi/v1/dns/view", r.URL.Path)
		assert.Equal(t, `name=="default"`, r.URL.Query().Get("_filter"))
		assert.Equal(t, "full", r.URL.Query().Get("_inherit"))
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"id": "dns/view/v-1", "name": "default"},
			},
		})
	}))

	views, err := client.ListViews(context.Background(), `name=="default"`, "full")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "dns/view/v-1", views[0].ID)
	assert.Equal(t, "default", views[0].Name)
}

func TestListAuthZones(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ddi/v1/dns/auth_zone", r.URL.Path)
		assert.Equal(t, `fqdn=="example.com"`, r.URL.Query().Get("_filter"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"id": "dns/auth_zone/z-1", "fqdn": "example.com."},
			},
		})
	}))

	zones, err := client.ListAuthZones(context.Background(), `fqdn=="example.com"`, "full")
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "dns/auth_zone/z-1", zones[0].ID)
}

func TestListEmptyResults(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))

	zones, err := client.ListAuthZones(context.Background(), `fqdn=="nosuch.example"`, "full")
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestCreateRecord(t *testing.T) {
	var got Record
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ddi/v1/dns/record", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{
				"id":   "dns/record/r-1",
				"type": "TXT",
			},
		})
	}))

	created, err := client.CreateRecord(context.Background(), &Record{
		Name:  "_acme-challenge.example.com",
		Type:  "TXT",
		Rdata: TXTRdata{Text: "abc123"},
		Zone:  "dns/auth_zone/z-1",
		TTL:   300,
	})
	require.NoError(t, err)
	assert.Equal(t, "dns/record/r-1", created.ID)
	assert.Equal(t, "TXT", got.Type)
	assert.Equal(t, "abc123", got.Rdata.Text)
}

func TestCreateRecordMissingID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{}}`))
	}))

	_, err := client.CreateRecord(context.Background(), &Record{Type: "TXT"})
	assert.EqualError(t, err, "create record response carries no record id")
}

func TestDeleteRecord(t *testing.T) {
	var path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	// qualified and bare identifiers both address the same path
	require.NoError(t, client.DeleteRecord(context.Background(), "dns/record/r-1"))
	assert.Equal(t, "/api/ddi/v1/dns/record/r-1", path)

	require.NoError(t, client.DeleteRecord(context.Background(), "r-2"))
	assert.Equal(t, "/api/ddi/v1/dns/record/r-2", path)
}

func TestAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":[{"message":"invalid token"}]}`))
	}))

	_, err := client.ListViews(context.Background(), `name=="default"`, "full")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected an *APIError, got %T", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "invalid token")
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Kind: "zone", Name: "example.com"}
	assert.EqualError(t, err, `zone "example.com" not found`)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(context.Canceled))
}
