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

package resolver

import (
	"errors"

	"dirpx.dev/ipcname/apis"
)

// ErrUnresolved is returned when no strategy of the chain handled a scope.
var ErrUnresolved = errors.New("ipcname(resolver): no strategy handled the scope")

// New returns a prefix resolver over strategies, consulted in the given
// order. Nil entries are dropped. Concurrent use is safe as long as every
// strategy's TryPrefix is.
func New(strategies ...apis.Strategy) apis.Resolver {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain never changes after New; the first strategy that claims a scope
// decides its prefix or error.
type chain struct {
	strats []apis.Strategy
}

// ResolvePrefix runs strategies in order until one handles the scope.
// The handling strategy's error, if any, is returned as is.
func (r chain) ResolvePrefix(scope apis.Scope, cfg apis.Config) (string, error) {
	for _, s := range r.strats {
		prefix, ok, err := s.TryPrefix(scope, cfg)
		if !ok {
			continue
		}
		if err != nil {
			return "", err
		}
		return prefix, nil
	}
	return "", ErrUnresolved
}
