/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"
)

func withVars(t *testing.T, v, commit, tag, dirty string) {
	t.Helper()
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	Version, GitCommit, GitTag, GitDirty = v, commit, tag, dirty
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestGet_Ldflags(t *testing.T) {
	withVars(t, "v1.2.3", "unknown", "unknown", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q", got)
	}
	if got := UserAgent(); got != "tokentheme/v1.2.3" {
		t.Errorf("UserAgent() = %q", got)
	}
}

func TestFull_WithCommit(t *testing.T) {
	withVars(t, "v1.2.3", "abcdef0123456", "v1.2.3", "")
	if got := Full(); got != "v1.2.3 (commit: abcdef0123456)" {
		t.Errorf("Full() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	withVars(t, "v0.1.0", "abc", "v0.1.0", "dirty")
	info := Info()
	if !info.Dirty || info.Version != "v0.1.0" {
		t.Errorf("Info() = %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
}
