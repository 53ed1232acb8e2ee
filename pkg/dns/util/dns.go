// +skip_license_check

/*
This file contains portions of code directly taken from the 'xenolf/lego' project.
A copy of the license for this code can be found in the file named LICENSE in
this directory.
*/

package util

import (
	"fmt"

	"github.com/miekg/dns"
)

// DNS01Record returns the name and value of the TXT record which will fulfill
// the `dns-01` challenge for domain. When the challenge name is a CNAME the
// target of the CNAME is returned instead, so the record is created where the
// validating server will look for it.
func DNS01Record(domain, value string, nameservers []string) (string, string) {
	fqdn := fmt.Sprintf("_acme-challenge.%s.", domain)

	// Check if the domain has CNAME then return that
	r, err := DNSQuery(fqdn, dns.TypeCNAME, nameservers, true)
	if err == nil && r.Rcode == dns.RcodeSuccess {
		fqdn = updateDomainWithCName(r, fqdn)
	}
	return fqdn, value
}
