package version

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"dev build", "dev", "none", "unknown", "dev (development build)"},
		{"release", "v1.2.0", "abc1234", "2026-01-05", "v1.2.0 (commit: abc1234, built: 2026-01-05)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVersion(tt.version, tt.commit, tt.date); got != tt.want {
				t.Errorf("FormatVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLdflagsWin(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v9.9.9"
	if v, _, _ := GetVersionComponents(); v != "v9.9.9" {
		t.Errorf("GetVersionComponents() version = %q, want v9.9.9", v)
	}
}
