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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/client"
)

var ErrMissingConfig = errors.New("missing required configuration")

type TestConfig struct {
	// BaseURL is empty when the suites should run against the fake server.
	BaseURL           string
	ValidEmail        string
	ValidPassword     string
	IncorrectEmail    string
	IncorrectPassword string
	ImagesDir         string
	RequestTimeout    time.Duration
	RetryInterval     time.Duration
	MaxRetries        int
	SkipIntegration   bool
	LogRequests       bool
	LogResponses      bool
	ValidateResponses bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	defaults := client.DefaultOptions()

	config := &TestConfig{
		BaseURL:           os.Getenv("API_BASE_URL"),
		ValidEmail:        os.Getenv("VALID_EMAIL"),
		ValidPassword:     os.Getenv("VALID_PASSWORD"),
		IncorrectEmail:    getStringWithDefault("INCORRECT_EMAIL", "unknown-user@petfriends.test"),
		IncorrectPassword: getStringWithDefault("INCORRECT_PASSWORD", "incorrect-password"),
		ImagesDir:         getStringWithDefault("IMAGES_DIR", findImagesDir()),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", defaults.RequestTimeout),
		RetryInterval:     getDurationWithDefault("RETRY_INTERVAL", defaults.RetryInterval),
		MaxRetries:        getIntWithDefault("MAX_RETRIES", defaults.MaxRetries),
		SkipIntegration:   getBoolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", true),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UsesFakeServer reports whether no live deployment was configured.
func (c *TestConfig) UsesFakeServer() bool {
	return c.BaseURL == ""
}

// ClientOptions converts the configuration into client options.
func (c *TestConfig) ClientOptions() *client.Options {
	return &client.Options{
		RequestTimeout:    c.RequestTimeout,
		MaxRetries:        c.MaxRetries,
		RetryInterval:     c.RetryInterval,
		LogRequests:       c.LogRequests,
		LogResponses:      c.LogResponses,
		ValidateResponses: c.ValidateResponses,
	}
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// firstExisting returns the absolute form of the first path that exists.
func firstExisting(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
		}
	}

	return ""
}

func findImagesDir() string {
	dir := firstExisting(
		"../../images", // From test/api/suites directory
		"../images",    // From test/api directory
		"test/images",  // From the repository root
	)

	if dir == "" {
		return filepath.Join("..", "..", "images")
	}

	return dir
}

func loadEnvFile() {
	envPath := firstExisting(
		"../../.env", // From test/api/suites directory
		".env",
	)

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that credentials accompany a live deployment.
func validateRequiredFields(config *TestConfig) error {
	if config.UsesFakeServer() {
		return nil
	}

	var missing []string

	if config.ValidEmail == "" {
		missing = append(missing, "VALID_EMAIL")
	}

	if config.ValidPassword == "" {
		missing = append(missing, "VALID_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return nil
}
