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

// Package app builds the bloxone-solver command line. The binary is meant to
// run as the auth/cleanup hook of a certificate issuance client: `present`
// publishes the validation TXT record, `cleanup` removes it again.
package app

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/infobloxopen/bloxone-acme-solver/pkg/dns"
	"github.com/infobloxopen/bloxone-acme-solver/pkg/dns/util"
	logf "github.com/infobloxopen/bloxone-acme-solver/pkg/logs"
)

type options struct {
	credentialsFile string
	cspURL          string
	domain          string
	fqdn            string
	token           string

	propagationTimeout   time.Duration
	propagationInterval  time.Duration
	skipPropagationCheck bool
}

// NewSolverCommand returns the root bloxone-solver command.
func NewSolverCommand(ctx context.Context) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "bloxone-solver",
		Short:        "Publish and remove ACME dns-01 challenge TXT records in Infoblox BloxOne DDI",
		SilenceUsage: true,
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&o.credentialsFile, "credentials", dns.DefaultCredentialsFile, "path to the BloxOne credentials INI file")
	fs.StringVar(&o.cspURL, "csp-url", "", "Cloud Services Portal URL; empty uses the production portal")
	fs.StringVar(&o.domain, "domain", "", "domain the challenge proves ownership of")
	fs.StringVar(&o.fqdn, "fqdn", "", "name of the validation TXT record; computed from --domain when empty")
	fs.StringVar(&o.token, "token", "", "validation token to publish in the TXT record")
	logf.AddFlags(fs)

	_ = cmd.MarkPersistentFlagRequired("domain")
	_ = cmd.MarkPersistentFlagRequired("token")

	present := &cobra.Command{
		Use:   "present",
		Short: "Create the validation TXT record and wait for it to propagate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runPresent(cmd.Context())
		},
	}
	present.Flags().DurationVar(&o.propagationTimeout, "propagation-timeout", 10*time.Second, "how long to wait for the record to propagate")
	present.Flags().DurationVar(&o.propagationInterval, "propagation-interval", 2*time.Second, "how often to poll for propagation")
	present.Flags().BoolVar(&o.skipPropagationCheck, "no-propagation-check", false, "exit immediately after the record is created")

	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the validation TXT record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runCleanUp(cmd.Context())
		},
	}

	cmd.AddCommand(present, cleanup)
	return cmd
}

// challenge returns the record name and value to publish. An explicit --fqdn
// wins; otherwise the name is derived from the domain, following a CNAME on
// the challenge name if one exists.
func (o *options) challenge() (string, string) {
	if o.fqdn != "" {
		return util.ToFqdn(o.fqdn), o.token
	}
	return util.DNS01Record(o.domain, o.token, util.RecursiveNameservers)
}

func (o *options) newSolver() (dns.Solver, error) {
	creds, err := dns.LoadCredentials(o.credentialsFile)
	if err != nil {
		return nil, err
	}
	return dns.NewSolver(creds, o.cspURL, util.RecursiveNameservers)
}

func (o *options) runPresent(ctx context.Context) error {
	log := logf.FromContext(ctx, "present")

	solver, err := o.newSolver()
	if err != nil {
		return err
	}

	fqdn, value := o.challenge()
	if err := solver.Present(ctx, o.domain, fqdn, value); err != nil {
		return err
	}
	log.V(logf.InfoLevel).Info("published challenge record", "domain", o.domain, "record", fqdn)

	if o.skipPropagationCheck {
		return nil
	}

	// The ACME server performs its own authoritative check before
	// validating; a record that has not shown up by the deadline is worth a
	// warning, not a failed issuance.
	err = util.WaitFor(o.propagationTimeout, o.propagationInterval, func() (bool, error) {
		return util.PreCheckDNS(fqdn, value, util.RecursiveNameservers, true)
	})
	if err != nil {
		log.V(logf.WarnLevel).Info("challenge record not yet visible", "record", fqdn, "reason", err.Error())
	}
	return nil
}

func (o *options) runCleanUp(ctx context.Context) error {
	log := logf.FromContext(ctx, "cleanup")

	solver, err := o.newSolver()
	if err != nil {
		return err
	}

	fqdn, value := o.challenge()
	// This process did not run Present, so the solver holds no pending
	// record state; remove the record by lookup when supported.
	if lc, ok := solver.(dns.LookupCleaner); ok {
		err = lc.CleanUpByLookup(ctx, o.domain, fqdn, value)
	} else {
		err = solver.CleanUp(ctx, o.domain, fqdn, value)
	}
	if err != nil {
		return err
	}

	log.V(logf.InfoLevel).Info("removed challenge record", "domain", o.domain, "record", fqdn)
	return nil
}
