//go:build windows

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
	"errors"

	"golang.org/x/sys/windows"

	"dirpx.dev/ipcname/apis"
)

// unlen is the maximum user name length (UNLEN in lmcons.h).
const unlen = 256

// accountName queries GetUserNameExW(NameSamCompatible), which yields
// "DOMAIN\user".
func accountName() (string, error) {
	n := uint32(unlen + 1)
	for {
		buf := make([]uint16, n)
		err := windows.GetUserNameEx(windows.NameSamCompatible, &buf[0], &n)
		if err == nil {
			return windows.UTF16ToString(buf[:n]), nil
		}
		// n now holds the required size, including the terminator.
		if !errors.Is(err, windows.ERROR_MORE_DATA) || n <= uint32(len(buf)) {
			return "", apis.NewSystemError("GetUserNameEx", err)
		}
	}
}
