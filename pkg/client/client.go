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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Client issues requests against a PetFriends deployment.
type Client struct {
	// baseURL is the service root without a trailing slash.
	baseURL string

	client *http.Client

	options *Options

	endpoints *Endpoints

	// validator is set when response validation is enabled.
	validator *openapi.Validator
}

var _ Interface = &Client{}

// New returns a new client. A nil options selects the defaults.
func New(ctx context.Context, baseURL string, options *Options) (*Client, error) {
	if options == nil {
		options = DefaultOptions()
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: options.RequestTimeout,
		},
		options:   options,
		endpoints: NewEndpoints(),
	}

	if options.ValidateResponses {
		validator, err := openapi.NewValidator(ctx)
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

// request describes a single call before it is put on the wire.
type request struct {
	method string
	path   string

	// template is the OpenAPI path the request matches.
	template string

	query       string
	header      http.Header
	contentType string
	body        []byte
}

func authHeader(key openapi.AuthKey) http.Header {
	header := http.Header{}
	header.Set("auth_key", key.Key)

	return header
}

// transient reports whether a transport failure is worth another attempt.
func transient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = c.options.RetryInterval

	//nolint:gosec // retries are small and non-negative
	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(max(c.options.MaxRetries, 0))), ctx)
}

func (c *Client) newHTTPRequest(ctx context.Context, r *request, traceParent string) (*http.Request, error) {
	fullURL := c.baseURL + r.path
	if r.query != "" {
		fullURL += "?" + r.query
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range r.header {
		req.Header[key] = append(req.Header[key], values...)
	}

	// Add W3C Trace Context headers
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=petfriends")
	req.Header.Set("Accept", "application/json")

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	return req, nil
}

//nolint:cyclop
func (c *Client) doRequest(ctx context.Context, r *request) (*http.Response, []byte, error) {
	log := log.FromContext(ctx).WithValues("method", r.method, "path", r.path)

	var (
		resp     *http.Response
		respBody []byte
	)

	operation := func() error {
		traceParent := createTraceParent()

		req, err := c.newHTTPRequest(ctx, r, traceParent)
		if err != nil {
			return backoff.Permanent(err)
		}

		start := time.Now()
		httpResp, err := c.client.Do(req)
		duration := time.Since(start)

		if err != nil {
			log.Error(err, "http request failed", "duration", duration, "traceID", extractTraceID(traceParent))

			if !transient(ctx, err) {
				return backoff.Permanent(fmt.Errorf("http request failed: %w", err))
			}

			return fmt.Errorf("http request failed: %w", err)
		}

		defer httpResp.Body.Close()

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			log.Error(err, "reading response body", "status", httpResp.StatusCode, "traceID", extractTraceID(traceParent))

			return backoff.Permanent(fmt.Errorf("reading response body: %w", err))
		}

		if c.options.LogRequests {
			log.Info("request completed", "status", httpResp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))
		}

		if c.options.LogResponses && len(body) > 0 {
			log.Info("response body", "status", httpResp.StatusCode, "body", string(body))
		}

		resp, respBody = httpResp, body

		return nil
	}

	notify := func(err error, delay time.Duration) {
		log.Info("retrying after transient failure", "error", err.Error(), "delay", delay)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		return nil, nil, err
	}

	c.validate(ctx, r, resp, respBody)

	return resp, respBody, nil
}

// validate reports contract violations without altering the result.
func (c *Client) validate(ctx context.Context, r *request, resp *http.Response, body []byte) {
	if c.validator == nil || resp.StatusCode != http.StatusOK {
		return
	}

	if err := c.validator.ValidateResponse(ctx, resp.Request, r.template, resp.StatusCode, resp.Header, body); err != nil {
		log.FromContext(ctx).Info("response does not match the OpenAPI description", "method", r.method, "path", r.template, "error", err.Error())
	}
}

// send performs the request and wraps whatever came back.
func send[T any](ctx context.Context, c *Client, r *request) (*Response[T], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, body, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	return newResponse[T](resp, body), nil
}
