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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NotFoundError reports that a filtered list query matched nothing. It marks
// an operator configuration problem (a missing view or zone), not a transient
// failure, so callers must not retry it.
type NotFoundError struct {
	// Kind is the resource collection queried, e.g. "view" or "zone".
	Kind string
	// Name is the filter value that matched nothing.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// APIError is a non-2xx response from the CSP API.
type APIError struct {
	Method     string
	URI        string
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("while querying the BloxOne API for %s %q: %s", e.Method, e.URI, http.StatusText(e.StatusCode))
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, "; ")
	}
	return msg
}

// newAPIError decodes the CSP error envelope, falling back to the status code
// alone when the body is not the documented shape.
func newAPIError(method, uri string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		URI:        uri,
		StatusCode: statusCode,
	}

	var envelope struct {
		Error []struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, e := range envelope.Error {
			if e.Message != "" {
				apiErr.Messages = append(apiErr.Messages, e.Message)
			}
		}
	}

	return apiErr
}
