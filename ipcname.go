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

package ipcname

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/builder"
	"dirpx.dev/ipcname/config"
	"dirpx.dev/ipcname/identity"
	"dirpx.dev/ipcname/provider"
)

// state is an immutable snapshot of the process-wide naming service.
type state struct {
	cfg  apis.Config
	log  *zap.Logger
	ns   apis.NamespaceProvider
	id   apis.Identity
	res  apis.Resolver
	bld  apis.Builder
	pres bool // resolver pinned
}

var (
	// st holds the current snapshot. Readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

// init publishes the default snapshot. The private namespace itself is
// created on the first User-scope name.
func init() {
	log := zap.NewNop()
	s := &state{
		cfg: config.FromEnvOrDefault(),
		log: log,
		ns:  provider.Detect(provider.WithLogger(log)),
		id:  identity.Current(),
		bld: builder.New(),
	}
	s.res = s.bld.BuildResolver(s.cfg, s.ns, s.id)
	st.Store(s)
}

// ErrNilBuiltResolver is returned when a builder returns a nil resolver.
var ErrNilBuiltResolver = errors.New("ipcname: builder returned nil resolver")

// New builds the name of a kernel object of the given scope using the
// process-wide snapshot.
//
// Only User scope can fail, and only when the private namespace is
// unavailable and the account name cannot be queried either. The error then
// wraps an *apis.SystemError carrying the OS code.
func New(scope Scope, suffix string) (ObjectName, error) {
	s := st.Load()
	n, err := Build(s.res, s.cfg, scope, suffix)
	if err != nil {
		s.log.Warn("ipcname: failed to build object name",
			zap.Stringer("scope", scope), zap.String("suffix", suffix), zap.Error(err))
		return ObjectName{}, err
	}
	return n, nil
}

// MustNew is like New but panics on error.
func MustNew(scope Scope, suffix string) ObjectName {
	n, err := New(scope, suffix)
	if err != nil {
		panic(err)
	}
	return n
}

// Prefix returns the prefix New would use for scope.
func Prefix(scope Scope) (string, error) {
	s := st.Load()
	return s.res.ResolvePrefix(scope, s.cfg)
}

// SetAll explicitly sets all process-wide components.
//
// Nil arguments leave the corresponding component unchanged. A non-nil res
// pins the resolver; a nil res unpins it and rebuilds it with the builder.
// This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, log *zap.Logger, ns apis.NamespaceProvider, id apis.Identity, res apis.Resolver, bld apis.Builder) error {
	if cfg != nil {
		if err := config.Validate(*cfg); err != nil {
			return err
		}
	}
	return update(func(s *state) {
		if cfg != nil {
			s.cfg = normalize(*cfg)
		}
		if log != nil {
			s.log = log
		}
		if ns != nil {
			s.ns = ns
		}
		if id != nil {
			s.id = id
		}
		if bld != nil {
			s.bld = bld
		}
		s.res, s.pres = res, res != nil
	})
}

// Config returns the process-wide configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the configuration and rebuilds the resolver unless
// it is pinned. Empty fields take their defaults.
func SetConfig(cfg apis.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	return update(func(s *state) { s.cfg = normalize(cfg) })
}

// Provider returns the process-wide namespace provider.
func Provider() apis.NamespaceProvider {
	return st.Load().ns
}

// SetProvider replaces the namespace provider. Ignored if ns is nil.
//
// The previous provider keeps its namespace handle open.
func SetProvider(ns apis.NamespaceProvider) error {
	if ns == nil {
		return nil
	}
	return update(func(s *state) { s.ns = ns })
}

// Identity returns the process-wide account identity.
func Identity() apis.Identity {
	return st.Load().id
}

// SetIdentity replaces the account identity. Ignored if id is nil.
func SetIdentity(id apis.Identity) error {
	if id == nil {
		return nil
	}
	return update(func(s *state) { s.id = id })
}

// Builder returns the process-wide builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds the resolver unless it is
// pinned. Ignored if b is nil.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return nil
	}
	return update(func(s *state) { s.bld = b })
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger replaces the logger used by New. Ignored if l is nil.
// Providers keep the logger they were built with.
func SetLogger(l *zap.Logger) error {
	if l == nil {
		return nil
	}
	return update(func(s *state) { s.log = l })
}

// Resolver returns the process-wide resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the process-wide resolver. Further changes of
// config, provider, identity or builder leave it in place until
// UnpinResolver. Ignored if res is nil.
func SetResolver(res apis.Resolver) error {
	if res == nil {
		return nil
	}
	return update(func(s *state) { s.res, s.pres = res, true })
}

// IsResolverPinned reports whether the resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver rebuilds the resolver with the current builder and lets
// later changes rebuild it again.
func UnpinResolver() error {
	return update(func(s *state) { s.pres = false })
}

// update derives a new snapshot from the current one under buildMu,
// rebuilds an unpinned resolver and publishes the result.
func update(fn func(*state)) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	fn(&next)
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.ns, next.id)
	}
	if next.res == nil {
		return ErrNilBuiltResolver
	}
	st.Store(&next)
	return nil
}

// normalize applies the config package defaults to empty fields.
func normalize(cfg apis.Config) apis.Config {
	return config.NewConfig(
		config.WithAppNamespace(cfg.AppNamespace),
		config.WithIsolation(!cfg.DisableIsolation),
		config.WithAccountSeparator(cfg.AccountSeparator),
	)
}
