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

package sanitize

import "strings"

// PathSeparator is the separator of the kernel object namespace path
// ("Local\name", "Global\name"). It must not appear inside a prefix segment.
const PathSeparator = `\`

// Account replaces every PathSeparator in name with sep, so that
// "DOMAIN\alice" becomes "DOMAIN.alice" for sep ".".
func Account(name, sep string) string {
	return strings.ReplaceAll(name, PathSeparator, sep)
}

// HasSeparator reports whether s contains PathSeparator. Object names
// accept any suffix; callers may use this to warn about suffixes that
// create a nested path.
func HasSeparator(s string) bool {
	return strings.Contains(s, PathSeparator)
}
