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

package main

import (
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/require"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/client"
	"github.com/petfriends-qa/petfriends-api-tests/test/fake"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

func TestRun(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(fake.NewDefault())
	defer server.Close()

	ctx := log.IntoContext(t.Context(), testr.New(t))

	o := &options{
		baseURL:  server.URL,
		email:    fake.DefaultEmail,
		password: fake.DefaultPassword,
		filter:   "my_pets",
	}

	require.NoError(t, run(ctx, o, client.DefaultOptions()))

	o.filter = "all_pets"
	require.ErrorIs(t, run(ctx, o, client.DefaultOptions()), errUnhealthy)

	o.filter = ""
	o.password = "wrong"
	require.ErrorIs(t, run(ctx, o, client.DefaultOptions()), errUnhealthy)
}
