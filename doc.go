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

// Package ipcname builds canonical names for shared kernel objects
// (mutexes, shared memory, events) used to coordinate unrelated processes.
//
// A name is a scope prefix followed by a caller-chosen suffix. Processes
// that agree on the scope, the suffix and the application namespace compute
// the same name without any prior coordination:
//
//	n, err := ipcname.New(ipcname.Session, "myqueue")
//	// n.String() == `Local\boost.log.session.myqueue`
//
// # Prefixes
//
//	ProcessGroup  Local\<ns>.process_group.
//	Session       Local\<ns>.session.
//	User          User\<ns>.user.                    (private namespace)
//	User          Local\<ns>.user.<DOMAIN.account>.  (fallback)
//	Global        Global\<ns>.global.                (also unknown scopes)
//
// <ns> is Config.AppNamespace, "boost.log" by default. The table is a
// compatibility surface: peers must produce byte-identical prefixes.
//
// There is no way to obtain a process group id, so ProcessGroup treats every
// process of the machine as a member of one group.
//
// # User scope
//
// User names live in a private kernel namespace bounded by the user's SID.
// The namespace is created (or opened, if another process of the same user
// created it first) on the first User-scope name and its handle is kept for
// the life of the process.
//
// When the namespace cannot be created or opened, for any reason,
// User scope degrades to a session-local prefix qualified with the account
// name, with every backslash replaced by Config.AccountSeparator. Only if
// the account name query fails too does New return an error; it wraps an
// *apis.SystemError carrying the OS error code. Global, Session and
// ProcessGroup never fail.
//
// # Design
//
// The process-wide service is an immutable snapshot behind an atomic
// pointer:
//
//   - Config: the application namespace, the isolation switch and the
//     account separator. Defaults can be overridden with IPCNAME_*
//     environment variables (see package config).
//
//   - Provider: the apis.NamespaceProvider owning the private namespace.
//     provider.Detect picks the kernel32 implementation when the private
//     namespace API is present and an always-unavailable one otherwise.
//
//   - Identity: reports the SAM-compatible account name for the fallback.
//
//   - Resolver: a chain of strategies built by the Builder, in order
//     ProcessGroup, Session, Isolated, Account, Global.
//
// New and Prefix are lock-free reads of the snapshot. Set* functions take a
// short build mutex, derive a new snapshot and publish it. Tests use SetAll
// or SetProvider and SetIdentity to substitute fakes and never touch real
// kernel objects.
//
// The provider itself publishes its handle with a single compare-and-swap.
// Goroutines that lose the race close their own handle and use the winner's,
// so exactly one handle is retained per provider and nobody blocks.
//
// This package names objects; it does not create, lock or destroy them.
package ipcname
