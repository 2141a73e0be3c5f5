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

package apis

// Strategy is a pluggable prefix step. A Resolver chains multiple
// strategies in order (e.g., Static -> Isolated -> Account -> Global).
type Strategy interface {
	// TryPrefix attempts to produce the prefix for scope according to cfg.
	// It returns (prefix, true, nil) if handled, ("", false, nil) to fall
	// through, and ("", true, err) when the scope is owned by this strategy
	// but cannot be served.
	TryPrefix(scope Scope, cfg Config) (prefix string, handled bool, err error)
}
