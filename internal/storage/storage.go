package storage

import (
	"net/url"
	"strings"

	"tracklit/internal/storage/postgres"
	"tracklit/internal/storage/sqlite"
)

// IsPostgresConnString reports whether config looks like a PostgreSQL
// connection string rather than a SQLite file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Inline credentials end up in shell history and
// process listings, so they are refused; the OS keyring, environment, or
// .pgpass are the sanctioned sources.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

// NewStore selects a backend from the config string: PostgreSQL connection
// strings get the postgres store, anything else is treated as a SQLite file
// path.
func NewStore(config string) Provider {
	if IsPostgresConnString(config) {
		return postgres.New(config)
	}
	return sqlite.New(config)
}
