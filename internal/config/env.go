// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// legacySignKeyEnv is the variable the first deployments used for the token
// signing key. It is honoured only when APP_TOKEN_SIGN_KEY is not set.
const legacySignKeyEnv = "JWT_SECRET"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = os.Getenv(legacySignKeyEnv)
	}

	return nil
}
