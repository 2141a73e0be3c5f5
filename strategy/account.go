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

package strategy

import (
	"fmt"

	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/utils/sanitize"
)

// NewAccount creates an apis.Strategy that qualifies User scope names with
// the account name reported by id.
func NewAccount(id apis.Identity) apis.Strategy {
	return &accountStrategy{id: id}
}

// accountStrategy is the User fallback. The resulting names live in the
// session directory and are only textually user-qualified: any process of
// the session can open them.
type accountStrategy struct {
	id apis.Identity
}

// Ensure accountStrategy implements apis.Strategy.
var _ apis.Strategy = (*accountStrategy)(nil)

// TryPrefix returns Local\<ns>.user.<account>. for User scope. An identity
// failure is terminal for the scope.
func (s *accountStrategy) TryPrefix(scope apis.Scope, cfg apis.Config) (string, bool, error) {
	if scope != apis.User {
		return "", false, nil
	}
	if s.id == nil {
		return "", true, fmt.Errorf("ipcname(strategy): failed to obtain the current user name: %w", ErrNoIdentity)
	}
	name, err := s.id.AccountName()
	if err != nil {
		return "", true, fmt.Errorf("ipcname(strategy): failed to obtain the current user name: %w", err)
	}
	account := sanitize.Account(name, cfg.AccountSeparator)
	return Prefix(RootLocal, cfg.AppNamespace, apis.User.String(), account), true, nil
}
