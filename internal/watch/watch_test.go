package watch

import "testing"

func TestFingerprinterChanged(t *testing.T) {
	var fp Fingerprinter

	if !fp.Changed([]byte("a")) {
		t.Error("expected first observation to report changed")
	}
	if fp.Changed([]byte("a")) {
		t.Error("expected identical content to report unchanged")
	}
	if !fp.Changed([]byte("b")) {
		t.Error("expected different content to report changed")
	}
}

func TestShouldIgnoreHiddenAndVendorDirs(t *testing.T) {
	cases := map[string]bool{
		"/repo/.git":          true,
		"/repo/node_modules":  true,
		"/repo/vendor":        true,
		"/repo/src":           false,
		"/repo/.":             false,
	}
	for path, want := range cases {
		if got := shouldIgnore(path); got != want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", path, got, want)
		}
	}
}
