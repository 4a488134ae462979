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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

var (
	ErrUnknownRoute = errors.New("route not described by the schema")

	//go:embed petfriends.yaml
	schemaData []byte
)

// Schema returns the raw OpenAPI description of the service.
func Schema() []byte {
	return schemaData
}

// Validator checks responses against the OpenAPI description of the service.
type Validator struct {
	spec *openapi3.T
}

// NewValidator loads and validates the embedded schema.
func NewValidator(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(schemaData)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return &Validator{
		spec: spec,
	}, nil
}

func (v *Validator) route(method, path string) (*routers.Route, error) {
	pathItem := v.spec.Paths.Find(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownRoute, method, path)
	}

	return &routers.Route{
		Spec:      v.spec,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}, nil
}

// ValidateResponse checks a response to a request made against the given path
// template, e.g. "/api/pets/{petID}".
func (v *Validator) ValidateResponse(ctx context.Context, request *http.Request, path string, status int, header http.Header, body []byte) error {
	route, err := v.route(request.Method, path)
	if err != nil {
		return err
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: request,
			Route:   route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(body)

	return openapi3filter.ValidateResponse(ctx, input)
}
