/*
Copyright 2025 the Petstore QA Authors.

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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// TestConfig drives the suites. With an empty BaseURL the harness boots an
// in-process petstored, so a default run needs no environment at all.
type TestConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	TestTimeout    time.Duration
	LogRequests    bool
	LogResponses   bool
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:        os.Getenv("API_BASE_URL"),
		RequestTimeout: getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		ConnectTimeout: getDurationWithDefault("CONNECT_TIMEOUT", 10*time.Second),
		TestTimeout:    getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", false),
	}
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

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
