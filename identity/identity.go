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

// Package identity reports the account the current process runs under.
package identity

import "dirpx.dev/ipcname/apis"

// Current returns the platform Identity.
func Current() apis.Identity {
	return current{}
}

// Static returns an Identity that always reports name.
func Static(name string) apis.Identity {
	return Func(func() (string, error) { return name, nil })
}

// Func adapts a plain function to apis.Identity.
type Func func() (string, error)

// AccountName implements apis.Identity.
func (f Func) AccountName() (string, error) {
	return f()
}

type current struct{}

// AccountName implements apis.Identity.
func (current) AccountName() (string, error) {
	return accountName()
}
