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

package main

import (
	"context"

	"github.com/infobloxopen/bloxone-acme-solver/cmd/bloxone-solver/app"
	"github.com/infobloxopen/bloxone-acme-solver/internal/cmd/util"
	logf "github.com/infobloxopen/bloxone-acme-solver/pkg/logs"
)

// bloxone-solver solves ACME dns-01 challenges against Infoblox BloxOne DDI.
// It is intended to run as the auth/cleanup hook of a certificate issuance
// client such as certbot.

func main() {
	ctx, exit := util.SetupExitHandler(context.Background(), util.GracefulShutdown)
	defer exit() // This function might call os.Exit, so defer last

	logf.InitLogs()
	defer logf.FlushLogs()
	ctx = logf.NewContext(ctx, logf.Log, "bloxone-solver")

	cmd := app.NewSolverCommand(ctx)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logf.Log.Error(err, "error executing command")
		util.SetExitCode(err)
	}
}
