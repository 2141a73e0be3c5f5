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

package provider

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"dirpx.dev/ipcname/apis"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procCreateBoundaryDescriptorW  = modkernel32.NewProc("CreateBoundaryDescriptorW")
	procAddSIDToBoundaryDescriptor = modkernel32.NewProc("AddSIDToBoundaryDescriptor")
	procDeleteBoundaryDescriptor   = modkernel32.NewProc("DeleteBoundaryDescriptor")
	procCreatePrivateNamespaceW    = modkernel32.NewProc("CreatePrivateNamespaceW")
	procOpenPrivateNamespaceW      = modkernel32.NewProc("OpenPrivateNamespaceW")
	procClosePrivateNamespace      = modkernel32.NewProc("ClosePrivateNamespace")

	namespaceProcs = []*windows.LazyProc{
		procCreateBoundaryDescriptorW,
		procAddSIDToBoundaryDescriptor,
		procDeleteBoundaryDescriptor,
		procCreatePrivateNamespaceW,
		procOpenPrivateNamespaceW,
		procClosePrivateNamespace,
	}
)

// errInvalidSID is returned when the token carries no usable SID.
var errInvalidSID = errors.New("ipcname(provider): token user sid is invalid")

// Detect returns a Namespace over kernel32 when every private namespace
// entry point resolves, and Unavailable otherwise.
func Detect(opts ...Option) apis.NamespaceProvider {
	for _, p := range namespaceProcs {
		if err := p.Find(); err != nil {
			return Unavailable()
		}
	}
	return New(Kernel32(), opts...)
}

// Kernel32 returns the Facility backed by kernel32.dll.
func Kernel32() apis.Facility {
	return kernel32{}
}

type kernel32 struct{}

func (kernel32) UserSID() ([]byte, error) {
	tok, err := windows.OpenCurrentProcessToken()
	if err != nil {
		return nil, err
	}
	defer tok.Close()

	tu, err := tok.GetTokenUser()
	if err != nil {
		return nil, err
	}
	sid := tu.User.Sid
	if sid == nil || !sid.IsValid() {
		return nil, errInvalidSID
	}

	// Copy the SID out of the token buffer so the result is self-contained.
	n := windows.GetLengthSid(sid)
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(sid)), n))
	return out, nil
}

func (kernel32) CreateBoundary(name string) (apis.Handle, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	r, _, e := procCreateBoundaryDescriptorW.Call(uintptr(unsafe.Pointer(p)), 0)
	if r == 0 {
		return 0, lastError(e)
	}
	return apis.Handle(r), nil
}

func (kernel32) AddSID(b *apis.Handle, sid []byte) error {
	if len(sid) == 0 {
		return errInvalidSID
	}
	r, _, e := procAddSIDToBoundaryDescriptor.Call(
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(&sid[0])),
	)
	if r == 0 {
		return lastError(e)
	}
	return nil
}

func (kernel32) DeleteBoundary(b apis.Handle) {
	if b != 0 {
		procDeleteBoundaryDescriptor.Call(uintptr(b))
	}
}

func (kernel32) CreateNamespace(b apis.Handle, alias string) (apis.Handle, error) {
	p, err := windows.UTF16PtrFromString(alias)
	if err != nil {
		return 0, err
	}
	r, _, e := procCreatePrivateNamespaceW.Call(0, uintptr(b), uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, lastError(e)
	}
	return apis.Handle(r), nil
}

func (kernel32) OpenNamespace(b apis.Handle, alias string) (apis.Handle, error) {
	p, err := windows.UTF16PtrFromString(alias)
	if err != nil {
		return 0, err
	}
	r, _, e := procOpenPrivateNamespaceW.Call(uintptr(b), uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, lastError(e)
	}
	return apis.Handle(r), nil
}

func (kernel32) CloseNamespace(h apis.Handle) error {
	// BOOLEAN result: only the low byte is meaningful.
	r, _, e := procClosePrivateNamespace.Call(uintptr(h), 0)
	if byte(r) == 0 {
		return lastError(e)
	}
	return nil
}

// lastError maps the error returned by LazyProc.Call on failure.
// A zero errno still means failure when the call reported one.
func lastError(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		return windows.ERROR_GEN_FAILURE
	}
	return err
}
