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
	"time"

	"github.com/spf13/pflag"
)

// Options control request behaviour.
type Options struct {
	// RequestTimeout bounds each individual HTTP attempt.
	RequestTimeout time.Duration

	// MaxRetries is the number of additional attempts made after a
	// transient transport failure. Any HTTP response ends the attempts.
	MaxRetries int

	// RetryInterval is the initial backoff between attempts.
	RetryInterval time.Duration

	LogRequests  bool
	LogResponses bool

	// ValidateResponses checks successful responses against the
	// OpenAPI description and logs any violation.
	ValidateResponses bool
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() *Options {
	return &Options{
		RequestTimeout: 30 * time.Second,
		MaxRetries:     2,
		RetryInterval:  500 * time.Millisecond,
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	defaults := DefaultOptions()

	f.DurationVar(&o.RequestTimeout, "request-timeout", defaults.RequestTimeout, "Timeout applied to each HTTP request")
	f.IntVar(&o.MaxRetries, "max-retries", defaults.MaxRetries, "Retries after a transient network failure")
	f.DurationVar(&o.RetryInterval, "retry-interval", defaults.RetryInterval, "Initial delay between retries")
	f.BoolVar(&o.LogRequests, "log-requests", false, "Log every request with its status and duration")
	f.BoolVar(&o.LogResponses, "log-responses", false, "Log every response body")
	f.BoolVar(&o.ValidateResponses, "validate-responses", false, "Validate successful responses against the OpenAPI description")
}
