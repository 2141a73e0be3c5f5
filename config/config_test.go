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

package config_test

import (
	"errors"
	"os"
	"testing"

	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.AppNamespace != config.DefaultAppNamespace {
		t.Fatalf("AppNamespace = %q, want %q", got.AppNamespace, config.DefaultAppNamespace)
	}
	if got.DisableIsolation != config.DefaultDisableIsolation {
		t.Fatalf("DisableIsolation = %v, want %v", got.DisableIsolation, config.DefaultDisableIsolation)
	}
	if got.AccountSeparator != config.DefaultAccountSeparator {
		t.Fatalf("AccountSeparator = %q, want %q", got.AccountSeparator, config.DefaultAccountSeparator)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithIsolation(t *testing.T) {
	c := config.NewConfig(config.WithIsolation(false))
	if !c.DisableIsolation {
		t.Fatalf("DisableIsolation = %v, want true", c.DisableIsolation)
	}

	c2 := config.NewConfig(config.WithIsolation(true))
	if c2.DisableIsolation {
		t.Fatalf("DisableIsolation = %v, want false", c2.DisableIsolation)
	}

	// The zero Config keeps isolation on.
	if (apis.Config{}).DisableIsolation != config.DefaultDisableIsolation {
		t.Fatal("zero Config does not match the isolation default")
	}
}

func TestWithAppNamespace(t *testing.T) {
	c := config.NewConfig(config.WithAppNamespace("acme.ipc"))
	if c.AppNamespace != "acme.ipc" {
		t.Fatalf("AppNamespace = %q, want %q", c.AppNamespace, "acme.ipc")
	}

	// Empty resets to default.
	c2 := config.NewConfig(config.WithAppNamespace(""))
	if c2.AppNamespace != config.DefaultAppNamespace {
		t.Fatalf("AppNamespace = %q, want default %q", c2.AppNamespace, config.DefaultAppNamespace)
	}
}

func TestWithAccountSeparator(t *testing.T) {
	c := config.NewConfig(config.WithAccountSeparator("_"))
	if c.AccountSeparator != "_" {
		t.Fatalf("AccountSeparator = %q, want %q", c.AccountSeparator, "_")
	}

	c2 := config.NewConfig(config.WithAccountSeparator(""))
	if c2.AccountSeparator != config.DefaultAccountSeparator {
		t.Fatalf("AccountSeparator = %q, want default %q", c2.AccountSeparator, config.DefaultAccountSeparator)
	}
}

func TestValidate(t *testing.T) {
	if err := config.Validate(config.DefaultConfig()); err != nil {
		t.Fatalf("Validate(default) = %v, want nil", err)
	}
	bad := config.NewConfig(config.WithAccountSeparator(`\`))
	if err := config.Validate(bad); !errors.Is(err, config.ErrInvalidSeparator) {
		t.Fatalf("Validate(%q) = %v, want ErrInvalidSeparator", bad.AccountSeparator, err)
	}
}

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restore
		os.Unsetenv(k)
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		unsetenv(t, "IPCNAME_APP_NAMESPACE", "IPCNAME_DISABLE_ISOLATION", "IPCNAME_ACCOUNT_SEPARATOR")

		got, err := config.FromEnv()
		if err != nil {
			t.Fatalf("FromEnv() error = %v", err)
		}
		if got != config.DefaultConfig() {
			t.Fatalf("FromEnv() = %+v, want default %+v", got, config.DefaultConfig())
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("IPCNAME_APP_NAMESPACE", "acme.ipc")
		t.Setenv("IPCNAME_DISABLE_ISOLATION", "true")
		t.Setenv("IPCNAME_ACCOUNT_SEPARATOR", "_")

		got, err := config.FromEnv()
		if err != nil {
			t.Fatalf("FromEnv() error = %v", err)
		}
		if got.AppNamespace != "acme.ipc" || !got.DisableIsolation || got.AccountSeparator != "_" {
			t.Fatalf("FromEnv() = %+v", got)
		}
	})

	t.Run("malformed bool", func(t *testing.T) {
		unsetenv(t, "IPCNAME_APP_NAMESPACE", "IPCNAME_ACCOUNT_SEPARATOR")
		t.Setenv("IPCNAME_DISABLE_ISOLATION", "maybe")

		got, err := config.FromEnv()
		if err == nil {
			t.Fatal("FromEnv() error = nil, want parse error")
		}
		if got != config.DefaultConfig() {
			t.Fatalf("FromEnv() = %+v, want default on error", got)
		}
		if config.FromEnvOrDefault() != config.DefaultConfig() {
			t.Fatal("FromEnvOrDefault() did not fall back to default")
		}
	})

	t.Run("backslash separator rejected", func(t *testing.T) {
		unsetenv(t, "IPCNAME_APP_NAMESPACE", "IPCNAME_DISABLE_ISOLATION")
		t.Setenv("IPCNAME_ACCOUNT_SEPARATOR", `\`)

		if _, err := config.FromEnv(); !errors.Is(err, config.ErrInvalidSeparator) {
			t.Fatalf("FromEnv() error = %v, want ErrInvalidSeparator", err)
		}
	})
}
