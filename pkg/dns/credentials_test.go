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

package dns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredentialsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "infoblox.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredentials(t *testing.T) {
	path := writeCredentialsFile(t, "api_key = secret-key\nview = internal\n")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", creds.APIKey)
	assert.Equal(t, "internal", creds.View)
}

func TestLoadCredentialsBlankView(t *testing.T) {
	path := writeCredentialsFile(t, "api_key = secret-key\n")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", creds.APIKey)
	assert.Empty(t, creds.View)
}

func TestLoadCredentialsCertbotPrefix(t *testing.T) {
	path := writeCredentialsFile(t, "dns_infoblox_universal_api_key = secret-key\ndns_infoblox_universal_view = internal\n")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", creds.APIKey)
	assert.Equal(t, "internal", creds.View)
}

func TestLoadCredentialsMissingAPIKey(t *testing.T) {
	path := writeCredentialsFile(t, "view = internal\n")

	_, err := LoadCredentials(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing api_key")
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "nonexistent.ini"))
	assert.Error(t, err)
}
