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

// Package dns glues a certificate issuance host to the BloxOne DNS-01
// provider through a plain two-method interface.
package dns

import (
	"context"

	"github.com/infobloxopen/bloxone-acme-solver/pkg/dns/bloxone"
)

// Solver publishes and later removes the validation TXT record of a dns-01
// challenge. The host calls Present and CleanUp once per challenge attempt,
// in that order; CleanUp runs even when issuance fails elsewhere.
type Solver interface {
	Present(ctx context.Context, domain, fqdn, value string) error
	CleanUp(ctx context.Context, domain, fqdn, value string) error
}

// LookupCleaner is implemented by solvers that can remove challenge records
// without the in-process state left behind by Present. Hosts that run
// cleanup as a fresh process should prefer it over CleanUp.
type LookupCleaner interface {
	CleanUpByLookup(ctx context.Context, domain, fqdn, value string) error
}

// NewSolver returns a Solver backed by the BloxOne provider. cspURL is
// optional and overrides the production portal endpoint.
func NewSolver(creds Credentials, cspURL string, dns01Nameservers []string) (Solver, error) {
	return bloxone.NewDNSProviderCredentials(creds.APIKey, creds.View, cspURL, dns01Nameservers)
}
