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
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"dirpx.dev/ipcname/apis"
)

const (
	// DefaultAppNamespace represents the default for AppNamespace.
	// Existing peers of this naming contract use "boost.log".
	DefaultAppNamespace = "boost.log"
	// DefaultDisableIsolation represents the default for DisableIsolation.
	// When false, User scope tries the private kernel namespace first.
	DefaultDisableIsolation = false
	// DefaultAccountSeparator represents the default for AccountSeparator.
	DefaultAccountSeparator = "."

	// EnvPrefix is the prefix of all environment variables read by FromEnv.
	EnvPrefix = "IPCNAME"
)

// ErrInvalidSeparator is returned when the account separator contains a
// backslash, which the kernel object name grammar reserves.
var ErrInvalidSeparator = errors.New("ipcname(config): account separator must not contain a backslash")

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AppNamespace:     DefaultAppNamespace,
		DisableIsolation: DefaultDisableIsolation,
		AccountSeparator: DefaultAccountSeparator,
	}
}

// Validate checks cfg for values that would produce malformed prefixes.
func Validate(cfg apis.Config) error {
	if strings.Contains(cfg.AccountSeparator, `\`) {
		return ErrInvalidSeparator
	}
	return nil
}

// env mirrors apis.Config with envconfig tags.
type env struct {
	AppNamespace     string `envconfig:"APP_NAMESPACE" default:"boost.log"`
	DisableIsolation bool   `envconfig:"DISABLE_ISOLATION" default:"false"`
	AccountSeparator string `envconfig:"ACCOUNT_SEPARATOR" default:"."`
}

// FromEnv loads the configuration from IPCNAME_* environment variables.
// Unset variables take their defaults.
func FromEnv() (apis.Config, error) {
	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return DefaultConfig(), fmt.Errorf("ipcname(config): failed to load environment: %w", err)
	}
	cfg := normalize(apis.Config{
		AppNamespace:     e.AppNamespace,
		DisableIsolation: e.DisableIsolation,
		AccountSeparator: e.AccountSeparator,
	})
	if err := Validate(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// FromEnvOrDefault loads the configuration from the environment or returns
// the default configuration if the environment is malformed.
func FromEnvOrDefault() apis.Config {
	cfg, err := FromEnv()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// normalize resets empty fields to their defaults. DisableIsolation needs
// no reset: its zero value is the default.
func normalize(cfg apis.Config) apis.Config {
	if cfg.AppNamespace == "" {
		cfg.AppNamespace = DefaultAppNamespace
	}
	if cfg.AccountSeparator == "" {
		cfg.AccountSeparator = DefaultAccountSeparator
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAppNamespace sets the AppNamespace option.
// An empty value resets to the default.
func WithAppNamespace(ns string) Option {
	return func(c *apis.Config) {
		c.AppNamespace = ns
	}
}

// WithIsolation turns the private namespace for User scope on or off.
func WithIsolation(on bool) Option {
	return func(c *apis.Config) {
		c.DisableIsolation = !on
	}
}

// WithAccountSeparator sets the AccountSeparator option.
// An empty value resets to the default.
func WithAccountSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.AccountSeparator = sep
	}
}
