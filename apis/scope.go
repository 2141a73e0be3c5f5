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

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownScope is returned by ParseScope for names that match no Scope.
var ErrUnknownScope = errors.New("ipcname(apis): unknown scope")

// Scope selects how widely a named kernel object is visible.
//
// The zero value is Global. Values outside the declared range are treated
// as Global by the default resolver.
type Scope int

const (
	// Global names are visible machine-wide, across sessions.
	Global Scope = iota
	// ProcessGroup names are visible to every process of one coordination
	// group. There is no way to obtain a real process group id, so all
	// processes on the machine count as one group.
	ProcessGroup
	// Session names are visible to all processes of the current login session.
	Session
	// User names are visible only to processes running as the current user.
	User
)

var scopeNames = [...]string{
	Global:       "global",
	ProcessGroup: "process_group",
	Session:      "session",
	User:         "user",
}

// Scopes returns all declared scopes in declaration order.
func Scopes() []Scope {
	return []Scope{Global, ProcessGroup, Session, User}
}

// String returns the lowercase tag of the scope, e.g. "process_group".
func (s Scope) String() string {
	if s.Valid() {
		return scopeNames[s]
	}
	return "scope(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the declared scopes.
func (s Scope) Valid() bool {
	return s >= Global && int(s) < len(scopeNames)
}

// ParseScope maps a scope tag back to its Scope. Matching ignores case and
// accepts "-" in place of "_".
func ParseScope(name string) (Scope, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, tag := range scopeNames {
		if tag == n {
			return Scope(i), nil
		}
	}
	return Global, ErrUnknownScope
}
