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

package api

import (
	"context"
	"net/http/httptest"
	"path/filepath"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/client"
	"github.com/petfriends-qa/petfriends-api-tests/test/fake"
)

// Photo fixtures shipped in the images directory.
const (
	DogPhoto         = "dog.jpeg"
	CatPhoto         = "cat.jpg"
	AnimatedDogPhoto = "anim_dog.gif"
)

// NewAPIClientWithConfig builds the client shared by every scenario.
func NewAPIClientWithConfig(ctx context.Context, config *TestConfig) (*client.Client, error) {
	return client.New(ctx, config.BaseURL, config.ClientOptions())
}

// StartFakeServer starts an in-process PetFriends server and points the
// configuration and its credentials at it. The caller closes the server.
func StartFakeServer(config *TestConfig) *httptest.Server {
	server := httptest.NewServer(fake.NewDefault())

	config.BaseURL = server.URL
	config.ValidEmail = fake.DefaultEmail
	config.ValidPassword = fake.DefaultPassword

	return server
}

// PhotoPath resolves a photo fixture name.
func PhotoPath(config *TestConfig, name string) string {
	return filepath.Join(config.ImagesDir, name)
}
