package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SessionEnv is the environment variable carrying the session cookie value.
const SessionEnv = "FANBOXSESSID"

// LoadSession resolves the session credential.
//
// Resolution order: a local .env file is loaded first (ignored when
// absent), then the FANBOXSESSID environment variable, then the session
// file at the given path. Both sources missing is not an error; the
// returned session is simply empty and callers should warn.
func LoadSession(path string) string {
	_ = godotenv.Load()

	if sess := os.Getenv(SessionEnv); sess != "" {
		return sess
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}
