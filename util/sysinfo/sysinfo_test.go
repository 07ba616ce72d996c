package sysinfo

import (
	"runtime"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name      string
		colorFGBG string
		want      string
	}{
		{
			name:      "dark theme",
			colorFGBG: "15;0",
			want:      "dark",
		},
		{
			name:      "light theme",
			colorFGBG: "0;15",
			want:      "light",
		},
		{
			name:      "light theme with bg=8",
			colorFGBG: "0;8",
			want:      "light",
		},
		{
			name:      "dark theme with bg=7",
			colorFGBG: "15;7",
			want:      "dark",
		},
		{
			name:      "empty string",
			colorFGBG: "",
			want:      "unknown",
		},
		{
			name:      "invalid format - single value",
			colorFGBG: "15",
			want:      "unknown",
		},
		{
			name:      "multiple values - use last",
			colorFGBG: "15;0;8",
			want:      "light",
		},
		{
			name:      "non-numeric background",
			colorFGBG: "15;default",
			want:      "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectTheme(tt.colorFGBG)
			if got != tt.want {
				t.Errorf("detectTheme(%q) = %q, want %q", tt.colorFGBG, got, tt.want)
			}
		})
	}
}

func TestColorSupportHonorsColorterm(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		colorterm string
		want      string
	}{
		{name: "truecolor advertised", term: "xterm-256color", colorterm: "truecolor", want: "truecolor"},
		{name: "24bit advertised", term: "xterm-256color", colorterm: "24bit", want: "truecolor"},
		{name: "no term at all", term: "", colorterm: "", want: "monochrome"},
		{name: "unknown terminal", term: "definitely-not-a-terminal", colorterm: "", want: "monochrome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := colorSupportFromTerminfo(tt.term, tt.colorterm)
			if got != tt.want {
				t.Errorf("colorSupportFromTerminfo(%q, %q) = %q, want %q", tt.term, tt.colorterm, got, tt.want)
			}
		})
	}
}

func TestNewSystemInfoPopulatesOS(t *testing.T) {
	info := NewSystemInfo()
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", info.Architecture, runtime.GOARCH)
	}
}
