// Package constant .
package constant

// default config
const (
	AppName        = "vecbind"
	DefaultProfile = "dotgrid"
	DefaultStore   = "file"
	DefaultFormat  = "yaml"
	EnvPrefix      = "VECBIND"
	DefaultDBName  = "profiles.db"
)

// redis
const (
	MaxRetries = 3
	// cluster
	MaxRedirects = 10

	DefaultKeyPrefix = "vecbind"
)

// tui
const (
	ListProportion = 0.4
	ClockFormat    = "15:04:05"
)
