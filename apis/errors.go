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
	"fmt"
	"syscall"
)

// SystemError reports a failed OS call together with its error code.
type SystemError struct {
	// Op names the failing operation, e.g. "GetUserNameEx".
	Op string
	// Code is the OS error code, taken from a syscall.Errno anywhere in the
	// Err chain. It is 0 when there is none, which is typical for os/user
	// failures off Windows.
	Code uint32
	// Err is the underlying error.
	Err error
}

// NewSystemError wraps err for op, extracting the errno when present.
func NewSystemError(op string, err error) *SystemError {
	se := &SystemError{Op: op, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		se.Code = uint32(errno)
	}
	return se
}

func (e *SystemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ipcname: %s failed (code %d)", e.Op, e.Code)
	}
	return fmt.Sprintf("ipcname: %s failed (code %d): %v", e.Op, e.Code, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }
