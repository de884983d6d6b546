// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key is always required; the relational DSN only when the
// relational backend is selected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Backend {
	case BackendRelational:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
			return ErrUnsupportedDBDriver
		}
	case BackendDocument:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31 {
		return ErrInvalidAppConfigs
	}

	return nil
}
