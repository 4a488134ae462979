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
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/client"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/constants"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

type options struct {
	baseURL  string
	email    string
	password string
	filter   string
}

func (o *options) addFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", os.Getenv("API_BASE_URL"), "PetFriends base URL")
	f.StringVar(&o.email, "email", os.Getenv("VALID_EMAIL"), "Account email")
	f.StringVar(&o.password, "password", os.Getenv("VALID_PASSWORD"), "Account password")
	f.StringVar(&o.filter, "filter", string(openapi.FilterMyPets), "Pet list filter, empty for all pets")
}

// run authenticates and lists pets, returning an error when the service
// does not answer 200 to either.
func run(ctx context.Context, o *options, clientOptions *client.Options) error {
	logger := log.FromContext(ctx)

	c, err := client.New(ctx, o.baseURL, clientOptions)
	if err != nil {
		return err
	}

	keyResponse, err := c.GetAPIKey(ctx, o.email, o.password)
	if err != nil {
		return err
	}

	if keyResponse.StatusCode() != http.StatusOK || keyResponse.JSON200 == nil {
		return fmt.Errorf("%w: api key request returned %d", errUnhealthy, keyResponse.StatusCode())
	}

	logger.Info("authenticated", "status", keyResponse.StatusCode())

	petsResponse, err := c.ListPets(ctx, *keyResponse.JSON200, openapi.Filter(o.filter))
	if err != nil {
		return err
	}

	if petsResponse.StatusCode() != http.StatusOK || petsResponse.JSON200 == nil {
		return fmt.Errorf("%w: pet list returned %d", errUnhealthy, petsResponse.StatusCode())
	}

	logger.Info("listed pets", "status", petsResponse.StatusCode(), "filter", o.filter, "count", len(petsResponse.JSON200.Pets))

	return nil
}

func main() {
	var o options

	clientOptions := client.DefaultOptions()
	zapOptions := zap.Options{}

	goflags := flag.NewFlagSet("", flag.ExitOnError)
	zapOptions.BindFlags(goflags)

	o.addFlags(pflag.CommandLine)
	clientOptions.AddFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("smoke check starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("smoke"))

	if o.baseURL == "" {
		fmt.Println("--base-url or API_BASE_URL must be set")
		os.Exit(1)
	}

	if err := run(ctx, &o, clientOptions); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
