// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	w, h := DefaultLayout.Inner()
	if w != 800 || h != 290 {
		t.Errorf("inner size %vx%v, want 800x290", w, h)
	}
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte("width: 600\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultLayout
	want.Width = 600
	if l != want {
		t.Errorf("got %+v, want %+v", l, want)
	}

	l, err = ParseLayout([]byte("width: 500\nheight: 300\nmargin:\n  top: 10\n  right: 10\n  bottom: 20\n  left: 30\n"))
	if err != nil {
		t.Fatal(err)
	}
	want = Layout{500, 300, Margin{10, 10, 20, 30}}
	if l != want {
		t.Errorf("got %+v, want %+v", l, want)
	}

	for _, bad := range []string{"width: 50\n", "width: [1]\n", "height: -1\n"} {
		if _, err := ParseLayout([]byte(bad)); err == nil {
			t.Errorf("ParseLayout(%q) succeeded", bad)
		}
	}
}

func TestLoadLayout(t *testing.T) {
	if l, err := LoadLayout(""); err != nil || l != DefaultLayout {
		t.Errorf("LoadLayout(\"\") = %+v, %v", l, err)
	}
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("height: 500\n"), 0666); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLayout(path)
	if err != nil || l.Height != 500 || l.Width != DefaultLayout.Width {
		t.Errorf("LoadLayout = %+v, %v", l, err)
	}
	if _, err := LoadLayout(path + ".missing"); err == nil {
		t.Errorf("loading a missing layout succeeded")
	}
}
