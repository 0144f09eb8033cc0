package configs

import (
	"time"
)

// Defaults applied to the fields the configuration file leaves empty
const (
	DefaultWalletPath = "wallet"
	DefaultIdentity   = "appUser"
	DefaultChannel    = "spmainchannel"
	DefaultContract   = "sp-logic"
	DefaultTimeout    = 30 * time.Second
)

// ClientConfig contains the information about the query client configuration file
type ClientConfig struct {
	ProfilePath string          `yaml:"profile"`            // Path to the connection profile (required)
	WalletPath  string          `yaml:"wallet,omitempty"`   // Path to the file system wallet
	Identity    string          `yaml:"identity,omitempty"` // Label of the identity in the wallet
	Channel     string          `yaml:"channel,omitempty"`  // Channel the contract is deployed to
	Contract    string          `yaml:"contract,omitempty"` // Name of the chaincode
	Timeout     time.Duration   `yaml:"timeout,omitempty"`  // Gateway timeout
	Discovery   DiscoveryConfig `yaml:"discovery,flow"`     // Service discovery settings
	Path        string          `yaml:"-"`                  // Path the configuration was read from
}

// DiscoveryConfig mirrors the gateway discovery options
type DiscoveryConfig struct {
	AsLocalhost bool `yaml:"asLocalhost"` // Rewrite discovered addresses to localhost
}

// DefaultClientConfig returns the configuration used when no file is given
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		WalletPath: DefaultWalletPath,
		Identity:   DefaultIdentity,
		Channel:    DefaultChannel,
		Contract:   DefaultContract,
		Timeout:    DefaultTimeout,
		Discovery:  DiscoveryConfig{AsLocalhost: true},
	}
}
