package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}

	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}

	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}

	expectedPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if info.Platform != expectedPlatform {
		t.Errorf("Platform = %s, want %s", info.Platform, expectedPlatform)
	}
}

func TestString(t *testing.T) {
	info := Get()
	output := info.String()

	if !strings.Contains(output, "Blox CLI") {
		t.Error("String output should contain 'Blox CLI'")
	}

	if !strings.Contains(output, info.Version) {
		t.Errorf("String output should contain version %s", info.Version)
	}

	if !strings.Contains(output, info.Commit) {
		t.Errorf("String output should contain commit %s", info.Commit)
	}
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"release", "v1.2.0", "blox/1.2.0 (linux/amd64)"},
		{"unprefixed", "1.2.0", "blox/1.2.0 (linux/amd64)"},
		{"dev build", "dev", "blox/dev (linux/amd64)"},
		{"empty", "", "blox/dev (linux/amd64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{Version: tt.version, Platform: "linux/amd64"}
			if got := info.UserAgent(); got != tt.want {
				t.Errorf("UserAgent() = %q, want %q", got, tt.want)
			}
		})
	}
}
