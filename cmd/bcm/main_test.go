// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "testing"

func TestFilterArg(t *testing.T) {
	var vectors = []struct {
		input string
		want  string
	}{
		{"file", "file"},
		{"-d", "-d"},
		{"-d9", "-d"},
		{"-9f", "-f"},
		{"-123", "-"},
		{"-b16", "-b16"},
		{"-fb8", "-fb8"},
		{"-9b8", "-b8"},
		{"--block", "--block"},
		{"-", "-"},
	}

	for i, v := range vectors {
		if got := filterArg(v.input); got != v.want {
			t.Errorf("test %d, filterArg(%q): got %q, want %q", i, v.input, got, v.want)
		}
	}
}

func TestTargetName(t *testing.T) {
	var vectors = []struct {
		path       string
		decompress bool
		want       string
	}{
		{"file", false, "file.bcm"},
		{"file.bcm", false, "file.bcm.bcm"},
		{"file.bcm", true, "file"},
		{"file.txt", true, "file.txt.out"},
		{".bcm", true, ".bcm.out"},
	}

	for i, v := range vectors {
		if got := targetName(v.path, v.decompress); got != v.want {
			t.Errorf("test %d, targetName(%q, %v): got %q, want %q", i, v.path, v.decompress, got, v.want)
		}
	}
}
