// Package sysinfo collects client environment information for diagnostics.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"
)

// SystemInfo describes the host environment as seen at startup. Collected
// with a terminfo lookup only, so it is safe before any screen exists.
type SystemInfo struct {
	OS           string // runtime.GOOS (darwin, linux, windows)
	Architecture string // runtime.GOARCH (amd64, arm64, etc.)

	TermType      string // $TERM
	ColorTerm     string // $COLORTERM (truecolor indicator)
	ColorFGBG     string // $COLORFGBG
	DetectedTheme string // "dark", "light", "unknown"

	ColorSupport string // "monochrome", "16-color", "256-color", "truecolor"
	ColorCount   int
}

// NewSystemInfo collects system information without initializing a screen
func NewSystemInfo() *SystemInfo {
	info := &SystemInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		TermType:     os.Getenv("TERM"),
		ColorTerm:    os.Getenv("COLORTERM"),
		ColorFGBG:    os.Getenv("COLORFGBG"),
	}

	info.DetectedTheme = detectTheme(info.ColorFGBG)
	info.ColorSupport, info.ColorCount = colorSupportFromTerminfo(info.TermType, info.ColorTerm)

	return info
}

// detectTheme parses $COLORFGBG to determine if the terminal has a dark or
// light background. Format: "fg;bg" where bg >= 8 indicates light.
func detectTheme(colorFGBG string) string {
	if colorFGBG == "" {
		return "unknown"
	}

	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return "unknown"
	}
	bgStr := parts[len(parts)-1]

	// parse as integer; string comparison misorders multi-digit values
	var bgValue int
	if _, err := fmt.Sscanf(bgStr, "%d", &bgValue); err != nil {
		return "unknown"
	}
	if bgValue >= 8 {
		return "light"
	}
	return "dark"
}

// colorSupportFromTerminfo queries the terminfo database for color
// capabilities. $COLORTERM wins when set; modern terminals use it to
// advertise truecolor even when $TERM is xterm-256color.
func colorSupportFromTerminfo(term, colorterm string) (string, int) {
	if colorterm == "truecolor" || colorterm == "24bit" {
		return "truecolor", 16777216
	}

	if term == "" {
		return "monochrome", 0
	}
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return "monochrome", 0
	}

	switch {
	case ti.Colors >= 16777216:
		return "truecolor", ti.Colors
	case ti.Colors >= 256:
		return "256-color", ti.Colors
	case ti.Colors >= 8:
		return "16-color", ti.Colors
	default:
		return "monochrome", ti.Colors
	}
}
