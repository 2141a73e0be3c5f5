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

package strategy_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/config"
	"dirpx.dev/ipcname/identity"
	"dirpx.dev/ipcname/strategy"
)

// stubNamespace reports a fixed availability and counts Ensure calls.
type stubNamespace struct {
	ok    bool
	calls atomic.Int32
}

func (s *stubNamespace) Ensure() bool {
	s.calls.Add(1)
	return s.ok
}

func (s *stubNamespace) Handle() apis.Handle {
	if s.ok {
		return 1
	}
	return 0
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, `Local\boost.log.session.`, strategy.Prefix("Local", "boost.log", "session"))
	assert.Equal(t, `Local\ns.user.D.a.`, strategy.Prefix("Local", "ns", "user", "D.a"))
	assert.Equal(t, `Global\ns.`, strategy.Prefix("Global", "ns"))
}

func TestStatic(t *testing.T) {
	cfg := config.DefaultConfig()

	cases := []struct {
		name  string
		s     apis.Strategy
		scope apis.Scope
		want  string
	}{
		{"process group", strategy.NewProcessGroup(), apis.ProcessGroup, `Local\boost.log.process_group.`},
		{"session", strategy.NewSession(), apis.Session, `Local\boost.log.session.`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := tc.s.TryPrefix(tc.scope, cfg)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)

			// Other scopes fall through.
			for _, other := range apis.Scopes() {
				if other == tc.scope {
					continue
				}
				_, ok, err := tc.s.TryPrefix(other, cfg)
				assert.NoError(t, err)
				assert.False(t, ok, "scope %s", other)
			}
		})
	}
}

func TestGlobal_HandlesEverything(t *testing.T) {
	cfg := config.NewConfig(config.WithAppNamespace("acme"))
	s := strategy.NewGlobal()
	for _, scope := range append(apis.Scopes(), apis.Scope(-1), apis.Scope(42)) {
		got, ok, err := s.TryPrefix(scope, cfg)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `Global\acme.global.`, got)
	}
}

func TestIsolated(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("available", func(t *testing.T) {
		ns := &stubNamespace{ok: true}
		got, ok, err := strategy.NewIsolated(ns).TryPrefix(apis.User, cfg)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `User\boost.log.user.`, got)
	})

	t.Run("unavailable falls through", func(t *testing.T) {
		ns := &stubNamespace{}
		_, ok, err := strategy.NewIsolated(ns).TryPrefix(apis.User, cfg)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.EqualValues(t, 1, ns.calls.Load())
	})

	t.Run("isolation off skips the provider", func(t *testing.T) {
		ns := &stubNamespace{ok: true}
		_, ok, _ := strategy.NewIsolated(ns).TryPrefix(apis.User, config.NewConfig(config.WithIsolation(false)))
		assert.False(t, ok)
		assert.Zero(t, ns.calls.Load())
	})

	t.Run("other scopes never touch the provider", func(t *testing.T) {
		ns := &stubNamespace{ok: true}
		s := strategy.NewIsolated(ns)
		for _, scope := range []apis.Scope{apis.Global, apis.ProcessGroup, apis.Session} {
			_, ok, _ := s.TryPrefix(scope, cfg)
			assert.False(t, ok)
		}
		assert.Zero(t, ns.calls.Load())
	})

	t.Run("nil provider", func(t *testing.T) {
		_, ok, _ := strategy.NewIsolated(nil).TryPrefix(apis.User, cfg)
		assert.False(t, ok)
	})
}

func TestAccount(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("sanitizes separator", func(t *testing.T) {
		got, ok, err := strategy.NewAccount(identity.Static(`DOMAIN\alice`)).TryPrefix(apis.User, cfg)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `Local\boost.log.user.DOMAIN.alice.`, got)
		assert.NotContains(t, got[len(`Local\`):], `\`)
	})

	t.Run("custom separator", func(t *testing.T) {
		c := config.NewConfig(config.WithAccountSeparator("_"))
		got, _, err := strategy.NewAccount(identity.Static(`DOMAIN\alice`)).TryPrefix(apis.User, c)
		require.NoError(t, err)
		assert.Equal(t, `Local\boost.log.user.DOMAIN_alice.`, got)
	})

	t.Run("identity failure is terminal", func(t *testing.T) {
		osErr := apis.NewSystemError("GetUserNameEx", errors.New("access denied"))
		osErr.Code = 5
		id := identity.Func(func() (string, error) { return "", osErr })

		got, ok, err := strategy.NewAccount(id).TryPrefix(apis.User, cfg)
		assert.True(t, ok)
		assert.Empty(t, got)

		var se *apis.SystemError
		require.ErrorAs(t, err, &se)
		assert.EqualValues(t, 5, se.Code)
		assert.Equal(t, "GetUserNameEx", se.Op)
	})

	t.Run("nil identity", func(t *testing.T) {
		_, ok, err := strategy.NewAccount(nil).TryPrefix(apis.User, cfg)
		assert.True(t, ok)
		assert.ErrorIs(t, err, strategy.ErrNoIdentity)
	})

	t.Run("other scopes fall through", func(t *testing.T) {
		_, ok, err := strategy.NewAccount(identity.Static("x")).TryPrefix(apis.Session, cfg)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
