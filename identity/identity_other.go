//go:build !windows

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

package identity

import (
	"os/user"

	"dirpx.dev/ipcname/apis"
)

// accountName reads the name through os/user. Its errors rarely wrap an
// errno, so the SystemError code is usually 0 here.
func accountName() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", apis.NewSystemError("user.Current", err)
	}
	return u.Username, nil
}
