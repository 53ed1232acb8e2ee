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

package util

import (
	"context"
	"errors"
)

// SetExitCode sets the exit code to 0, 1, or 124 depending on the error kind.
// Context cancellation is a normal shutdown, not a failure.
func SetExitCode(err error) {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		// no error
	case errors.Is(err, context.DeadlineExceeded):
		SetExitCodeValue(124) // same as the timeout command
	default:
		SetExitCodeValue(1)
	}
}

// SetExitCodeValue enqueues a nonzero exit code for the exit
// function returned by SetupExitHandler.
func SetExitCodeValue(code int) {
	if code != 0 {
		select {
		case errorExitCodeChannel <- code:
		default:
			// an exit code is already waiting, keep the first one
		}
	}
}
