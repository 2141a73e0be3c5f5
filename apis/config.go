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

// Config carries read-only naming knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AppNamespace is the fixed literal identifying the owning subsystem.
	// It is embedded in every prefix, e.g. "Local\<AppNamespace>.session.".
	// Peers that need to rendezvous must agree on it byte for byte.
	AppNamespace string

	// DisableIsolation keeps User scope off the private kernel namespace.
	// When true, User scope always takes the account-name path. The zero
	// value leaves isolation on.
	DisableIsolation bool

	// AccountSeparator replaces every backslash of the account name in the
	// fallback User prefix ("DOMAIN\alice" -> "DOMAIN.alice").
	AccountSeparator string
}
