package versioninfo

import "testing"

func TestInfoString(t *testing.T) {
	tests := []struct {
		input    Info
		expected string
	}{
		{Info{}, "dev"},
		{Info{Version: "1.2.3"}, "v1.2.3"},
		{Info{Version: "v0.4.0", Commit: "abc123", BuiltBy: "goreleaser"}, "v0.4.0, commit abc123, built by goreleaser"},
		{Info{Version: "nightly"}, "nightly"},
	}

	for _, test := range tests {
		if result := test.input.String(); result != test.expected {
			t.Errorf("String() = %q; want %q", result, test.expected)
		}
	}
}

func TestIsVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1.2.0", true},
		{"v2.0.0-rc.1", true},
		{"1.2", false},
		{"Release 1.2.0", false},
		{"", false},
	}

	for _, test := range tests {
		if result := IsVersion(test.input); result != test.expected {
			t.Errorf("IsVersion(%q) = %v; want %v", test.input, result, test.expected)
		}
	}
}
