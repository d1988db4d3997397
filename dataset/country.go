// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "github.com/biter777/countries"

// CountryCode returns the ISO 3166-1 alpha-2 code of the named
// country, or "" if the name is not recognized.
func CountryCode(name string) string {
	c := countries.ByName(name)
	if c == countries.Unknown {
		return ""
	}
	return c.Alpha2()
}

// CountryLabel returns a display label for name, with its ISO code
// appended when one is known.
func CountryLabel(name string) string {
	if code := CountryCode(name); code != "" && code != name {
		return name + " (" + code + ")"
	}
	return name
}
