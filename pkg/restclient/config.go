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

package restclient

import "time"

const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout bounds the whole round trip.
	DefaultReadTimeout = 30 * time.Second

	// DefaultMaxBodySize bounds the in-memory response body, 1 MiB.
	DefaultMaxBodySize = 1 << 20
)

// Config is the immutable base configuration of a Client, fixed at
// construction.
type Config struct {
	// BaseURL is the absolute URL all path segments are appended to.
	BaseURL string

	// ConnectTimeout bounds connection establishment. Ignored when a
	// custom Transport is supplied.
	ConnectTimeout time.Duration

	// ReadTimeout bounds each call end to end. Ignored when a custom
	// Transport is supplied.
	ReadTimeout time.Duration

	// MaxBodySize caps how many response bytes are held in memory.
	MaxBodySize int64

	// StrictQuery rejects malformed "key=value" query parameters with
	// ErrMalformedQuery instead of silently dropping them.
	StrictQuery bool

	// Transport overrides the default HTTP client.
	Transport Doer
}

func (c *Config) withDefaults() *Config {
	config := &Config{}

	if c != nil {
		*config = *c
	}

	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}

	if config.ReadTimeout == 0 {
		config.ReadTimeout = DefaultReadTimeout
	}

	if config.MaxBodySize == 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}

	return config
}
