package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN while the relational backend is selected).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates a relational driver other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
