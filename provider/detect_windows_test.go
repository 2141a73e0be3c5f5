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

package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/ipcname/provider"
)

func TestDetect_WindowsNamespaceIsStable(t *testing.T) {
	ns := provider.Detect()
	if !ns.Ensure() {
		t.Skip("private namespaces are not available on this host")
	}
	h := ns.Handle()
	assert.NotZero(t, h)

	for i := 0; i < 5; i++ {
		assert.True(t, ns.Ensure())
		assert.Equal(t, h, ns.Handle())
	}
}

func TestKernel32_UserSID(t *testing.T) {
	sid, err := provider.Kernel32().UserSID()
	if err != nil {
		t.Skipf("process token unavailable: %v", err)
	}
	// Revision 1, then at least the authority bytes.
	assert.GreaterOrEqual(t, len(sid), 8)
	assert.EqualValues(t, 1, sid[0])
}
