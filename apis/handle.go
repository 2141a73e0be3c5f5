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

// Handle is an opaque OS handle value. Zero means "no handle".
type Handle uintptr

// Facility exposes the OS primitives behind a private kernel namespace.
// Implementations perform one OS call per method and never retry.
type Facility interface {
	// UserSID returns the security identifier of the current process user
	// as an opaque byte string.
	UserSID() ([]byte, error)
	// CreateBoundary creates an empty boundary descriptor called name.
	CreateBoundary(name string) (Handle, error)
	// AddSID attaches sid to the boundary descriptor. The OS may move the
	// descriptor, so b is updated in place.
	AddSID(b *Handle, sid []byte) error
	// DeleteBoundary releases a boundary descriptor.
	DeleteBoundary(b Handle)
	// CreateNamespace creates a private namespace bounded by b.
	CreateNamespace(b Handle, alias string) (Handle, error)
	// OpenNamespace opens an existing private namespace bounded by b.
	OpenNamespace(b Handle, alias string) (Handle, error)
	// CloseNamespace closes a namespace handle without destroying the
	// namespace for other holders.
	CloseNamespace(h Handle) error
}

// NamespaceProvider owns the process-wide private namespace used for User
// scope. Implementations must be safe for concurrent use.
type NamespaceProvider interface {
	// Ensure makes the namespace ready and reports whether it can be used.
	// It never returns an error: failures mean "not available".
	Ensure() bool
	// Handle returns the published namespace handle, or 0 if none.
	Handle() Handle
}

// Identity describes the account the process runs under.
type Identity interface {
	// AccountName returns the SAM-compatible account name, e.g. "DOMAIN\alice".
	AccountName() (string, error)
}
