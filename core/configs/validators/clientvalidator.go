package validators

import (
	"share-picture/core/configs"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Validates all fields of the client configuration
// Determines the validity and returns a boolean whether it is
// valid or invalid.
func ValidateClientConfig(c *configs.ClientConfig) (bool, error) {
	// The profile is the only field without a sensible default.
	if len(c.ProfilePath) == 0 {
		return false, errors.New("missing connection profile path")
	}

	if len(c.WalletPath) == 0 {
		return false, errors.New("missing wallet path")
	}

	if len(c.Identity) == 0 {
		return false, errors.New("missing identity label")
	}

	if len(c.Channel) == 0 {
		return false, errors.New("missing channel name")
	}

	if len(c.Contract) == 0 {
		return false, errors.New("missing contract name")
	}

	if c.Timeout < 0 {
		return false, errors.Errorf("timeout %s cannot be negative", c.Timeout)
	}

	if c.Timeout == 0 {
		zap.L().Warn("No gateway timeout in configuration, the SDK defaults apply.")
	}

	return true, nil
}
