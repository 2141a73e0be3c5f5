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

package provider

import (
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/ipcname/apis"
)

const (
	// DefaultBoundaryName is the name of the boundary descriptor that
	// carries the user SID.
	DefaultBoundaryName = "User"
	// DefaultAlias is the alias prefix of the private namespace. Object
	// names inside it are written as "<alias>\<name>".
	DefaultAlias = "User"
)

// Option customizes a Namespace.
type Option func(*Namespace)

// WithLogger sets the logger used to report soft failures.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Namespace) {
		if l != nil {
			n.log = l
		}
	}
}

// WithBoundaryName overrides DefaultBoundaryName.
func WithBoundaryName(name string) Option {
	return func(n *Namespace) {
		if name != "" {
			n.boundary = name
		}
	}
}

// WithAlias overrides DefaultAlias.
func WithAlias(alias string) Option {
	return func(n *Namespace) {
		if alias != "" {
			n.alias = alias
		}
	}
}

// New creates a NamespaceProvider over f. No OS call is made until the
// first Ensure.
func New(f apis.Facility, opts ...Option) *Namespace {
	n := &Namespace{
		f:        f,
		log:      zap.NewNop(),
		boundary: DefaultBoundaryName,
		alias:    DefaultAlias,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Namespace creates or opens the per-user private namespace at most once
// per instance and keeps exactly one handle to it.
//
// The handle slot moves once from 0 to a handle via compare-and-swap. A
// goroutine that loses the race closes its own handle and adopts the
// winner's, so no caller ever waits on another. Races between processes
// are settled by the OS create-or-open semantics.
//
// The published handle is never closed; the OS reclaims it at exit.
type Namespace struct {
	f        apis.Facility
	log      *zap.Logger
	boundary string
	alias    string
	h        atomic.Uintptr
}

// Ensure that Namespace implements apis.NamespaceProvider.
var _ apis.NamespaceProvider = (*Namespace)(nil)

// Handle returns the published namespace handle, or 0.
func (n *Namespace) Handle() apis.Handle {
	return apis.Handle(n.h.Load())
}

// Ensure reports whether the private namespace is available, creating or
// opening it on first use.
func (n *Namespace) Ensure() bool {
	if n.h.Load() != 0 {
		return true
	}
	if n.f == nil {
		return false
	}

	sid, err := n.f.UserSID()
	if err != nil || len(sid) == 0 {
		n.log.Debug("ipcname: user sid unavailable", zap.Error(err))
		return false
	}

	b, err := n.f.CreateBoundary(n.boundary)
	if err != nil || b == 0 {
		n.log.Debug("ipcname: boundary descriptor unavailable",
			zap.String("boundary", n.boundary), zap.Error(err))
		return false
	}
	// AddSID may move the descriptor, release whatever b ends up holding.
	defer func() { n.f.DeleteBoundary(b) }()

	if err := n.f.AddSID(&b, sid); err != nil {
		n.log.Debug("ipcname: failed to add sid to boundary descriptor", zap.Error(err))
		return false
	}

	h, err := n.f.CreateNamespace(b, n.alias)
	if err != nil || h == 0 {
		var oerr error
		h, oerr = n.f.OpenNamespace(b, n.alias)
		if oerr != nil || h == 0 {
			n.log.Debug("ipcname: private namespace unavailable",
				zap.String("alias", n.alias), zap.NamedError("create", err), zap.NamedError("open", oerr))
			return false
		}
	}

	if !n.h.CompareAndSwap(0, uintptr(h)) {
		if err := n.f.CloseNamespace(h); err != nil {
			n.log.Debug("ipcname: failed to close redundant namespace handle", zap.Error(err))
		}
	}
	return true
}
