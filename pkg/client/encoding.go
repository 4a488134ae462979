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
	"fmt"
	"maps"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/schema"
	"github.com/oapi-codegen/runtime"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

const (
	formContentType = "application/x-www-form-urlencoded"

	photoField = "pet_photo"
)

//nolint:gochecknoglobals
var formEncoder = newFormEncoder()

func newFormEncoder() *schema.Encoder {
	encoder := schema.NewEncoder()
	encoder.SetAliasTag("form")

	return encoder
}

// encodeValues flattens a form-tagged struct, keeping empty values.
func encodeValues(v any) (url.Values, error) {
	values := url.Values{}

	if err := formEncoder.Encode(v, values); err != nil {
		return nil, fmt.Errorf("encoding form: %w", err)
	}

	return values, nil
}

func encodeForm(v any) ([]byte, error) {
	values, err := encodeValues(v)
	if err != nil {
		return nil, err
	}

	return []byte(values.Encode()), nil
}

// encodeFilterQuery renders the filter as a form style query string, an
// empty filter included.
func encodeFilterQuery(filter openapi.Filter) (string, error) {
	queryValues := url.Values{}

	queryFrag, err := runtime.StyleParamWithLocation("form", true, "filter", runtime.ParamLocationQuery, string(filter))
	if err != nil {
		return "", fmt.Errorf("styling filter parameter: %w", err)
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return "", fmt.Errorf("parsing filter parameter: %w", err)
	}

	for k, v := range parsed {
		for _, v2 := range v {
			queryValues.Add(k, v2)
		}
	}

	return queryValues.Encode(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart writes the fields followed by the photo file. The photo part
// carries the content type detected from the file content.
func encodeMultipart(fields url.Values, photoPath string) ([]byte, string, error) {
	data, err := os.ReadFile(photoPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading photo: %w", err)
	}

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		for _, value := range fields[key] {
			if err := writer.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("writing field %s: %w", key, err)
			}
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, photoField, quoteEscaper.Replace(filepath.Base(photoPath))))
	header.Set("Content-Type", mimetype.Detect(data).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("writing photo part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}
