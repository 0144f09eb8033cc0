package validators

import (
	"testing"
	"time"

	"share-picture/core/configs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func validConfig() *configs.ClientConfig {
	c := configs.DefaultClientConfig()
	c.ProfilePath = "connection-org1.json"
	return c
}

func TestValidateClientConfig(t *testing.T) {
	t.Run("defaults with profile", func(t *testing.T) {
		if ok, err := ValidateClientConfig(validConfig()); !ok {
			t.Errorf("expected a valid config, err: %s", err)
		}
	})

	for name, mutate := range map[string]func(c *configs.ClientConfig){
		"missing profile":  func(c *configs.ClientConfig) { c.ProfilePath = "" },
		"missing wallet":   func(c *configs.ClientConfig) { c.WalletPath = "" },
		"missing identity": func(c *configs.ClientConfig) { c.Identity = "" },
		"missing channel":  func(c *configs.ClientConfig) { c.Channel = "" },
		"missing contract": func(c *configs.ClientConfig) { c.Contract = "" },
		"negative timeout": func(c *configs.ClientConfig) { c.Timeout = -time.Second },
	} {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)

			if ok, err := ValidateClientConfig(c); ok || err == nil {
				t.Errorf("expected an invalid config")
			}
		})
	}
}

func TestValidateWarnsWithoutTimeout(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	c := validConfig()
	if ok, err := ValidateClientConfig(c); !ok {
		t.Fatalf("expected a valid config, err: %s", err)
	}

	if logs.Len() != 0 {
		t.Errorf("unexpected warning with a %s timeout", c.Timeout)
	}

	c.Timeout = 0
	if ok, err := ValidateClientConfig(c); !ok {
		t.Fatalf("a zero timeout is valid, err: %s", err)
	}

	if logs.FilterMessageSnippet("No gateway timeout").Len() != 1 {
		t.Errorf("expected one warning for a zero timeout, got %d entries", logs.Len())
	}
}
