/*
Copyright 2026 the PetFriends QA Authors.

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

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the result of an operation, whatever status the server returned.
type Response[T any] struct {
	HTTPResponse *http.Response
	Body         []byte

	// JSON200 is set when the status is 200 and the body decodes as T.
	JSON200 *T
}

func newResponse[T any](resp *http.Response, body []byte) *Response[T] {
	r := &Response[T]{
		HTTPResponse: resp,
		Body:         body,
	}

	if resp.StatusCode == http.StatusOK && len(body) > 0 {
		var value T

		if err := json.Unmarshal(body, &value); err == nil {
			r.JSON200 = &value
		}
	}

	return r
}

// StatusCode returns the HTTP status code.
func (r *Response[T]) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}

	return 0
}

// Status returns the HTTP status line text.
func (r *Response[T]) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}

	return http.StatusText(0)
}

// Text returns the raw body, for responses that are not JSON.
func (r *Response[T]) Text() string {
	return string(r.Body)
}

// Decode unmarshals the raw body into v regardless of status.
func (r *Response[T]) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %d response: %w", r.StatusCode(), err)
	}

	return nil
}
