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
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// DefaultCredentialsFile is where certbot-style deployments keep the BloxOne
// credentials.
const DefaultCredentialsFile = "/etc/letsencrypt/infoblox.ini"

// Credentials holds the BloxOne settings loaded from the credentials file.
// They are read once and never change for the process lifetime.
type Credentials struct {
	// APIKey authenticates against the Cloud Services Portal.
	APIKey string
	// View names the DNS view for TXT entries. Blank means the provider
	// falls back to the view literally named "default".
	View string
}

// LoadCredentials reads an INI credentials file. api_key is required, view
// is optional. Keys carrying the certbot plugin prefix
// (dns_infoblox_universal_*) are accepted too, so an existing certbot
// credentials file works unchanged.
func LoadCredentials(path string) (Credentials, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Credentials{}, errors.Wrapf(err, "loading credentials file %s", path)
	}

	section := file.Section("")
	creds := Credentials{
		APIKey: lookupKey(section, "api_key"),
		View:   lookupKey(section, "view"),
	}
	if creds.APIKey == "" {
		return Credentials{}, errors.Errorf("credentials file %s is missing api_key", path)
	}
	return creds, nil
}

func lookupKey(section *ini.Section, name string) string {
	if v := section.Key(name).String(); v != "" {
		return v
	}
	return section.Key("dns_infoblox_universal_" + name).String()
}
