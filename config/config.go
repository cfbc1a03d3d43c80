/*
   Copyright 2025 The DIRPX Authors.

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

package config

import (
	"log/slog"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/compat"
)

const (
	// DefaultHostVersion represents the default for HostVersion.
	DefaultHostVersion = compat.DefaultVersion
	// DefaultNativeNames represents the default for NativeNames.
	// Host names keep KindOf output independent of Go's numeric types.
	DefaultNativeNames = apis.NamesHost
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		HostVersion: DefaultHostVersion,
		NativeNames: DefaultNativeNames,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithHostVersion sets the HostVersion option.
// A version compat.Parse rejects resets to the default.
func WithHostVersion(v string) Option {
	return func(c *apis.Config) {
		if _, err := compat.Parse(v); err != nil {
			c.HostVersion = DefaultHostVersion
			return
		}
		c.HostVersion = v
	}
}

// WithNativeNames sets the NativeNames option.
func WithNativeNames(s apis.NameStyle) Option {
	return func(c *apis.Config) {
		c.NativeNames = s
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

// WithObserver sets the Observer option.
func WithObserver(o apis.Observer) Option {
	return func(c *apis.Config) {
		c.Observer = o
	}
}

// Profile returns the host profile for cfg, falling back to the default dialect.
func Profile(cfg apis.Config) compat.Profile {
	p, err := compat.Parse(cfg.HostVersion)
	if err != nil {
		return compat.Default()
	}
	return p
}

// Logger returns cfg.Logger, or a logger that discards everything.
func Logger(cfg apis.Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.DiscardHandler)
}
