package config

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GenerateRandomID generates a 6-character random alphanumeric ID (lowercase).
// Used for history entries and search session identifiers.
func GenerateRandomID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 6
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		// Fallback to a fixed sentinel if nanoid fails
		return "error0"
	}
	return id
}
