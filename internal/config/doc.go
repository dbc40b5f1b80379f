// Package config handles fanbox-dl settings and the session credential.
//
// Settings live in an optional JSON file; a missing file yields defaults
// rather than an error. The session credential is resolved from the
// FANBOXSESSID environment variable (after loading a local .env file),
// falling back to a session file. Absence of both is non-fatal: requests
// simply go out unauthenticated and the upstream service rejects them.
package config
