package clientinterfaces

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"share-picture/blockchains/types"
	"share-picture/core"

	fabcore "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// discoveryEnv makes the gateway rewrite discovered peer addresses to localhost,
// needed when the network runs in docker on the local machine.
const discoveryEnv = "DISCOVERY_AS_LOCALHOST"

//FabricGateway is the Hyperledger Fabric implementation of core.Gateway.
// Provides functionality to query the Fabric blockchain through the gateway SDK.
type FabricGateway struct {
	AsLocalhost bool          // rewrite discovered endpoints to localhost
	Timeout     time.Duration // commit/query timeout handed to the gateway, 0 keeps the SDK default
}

// NewFabricGateway returns a gateway backend with the given discovery and timeout settings
func NewFabricGateway(asLocalhost bool, timeout time.Duration) *FabricGateway {
	return &FabricGateway{
		AsLocalhost: asLocalhost,
		Timeout:     timeout,
	}
}

// fabricProfile holds the parsed connection profile
type fabricProfile struct {
	path     string
	backends []fabcore.ConfigBackend
}

func (p *fabricProfile) Path() string {
	return p.path
}

// provider hands the already parsed backends to the SDK so the file is not read twice
func (p *fabricProfile) provider() fabcore.ConfigProvider {
	return func() ([]fabcore.ConfigBackend, error) {
		return p.backends, nil
	}
}

// profileType guesses the connection profile encoding from its extension.
// Fabric samples ship JSON profiles, so anything that is not YAML is read as JSON.
func profileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// LoadProfile reads and parses the connection profile eagerly, config.FromFile
// would only fail once the gateway connects
func (f *FabricGateway) LoadProfile(path string) (core.Profile, error) {
	clean := filepath.Clean(path)

	raw, err := ioutil.ReadFile(clean)
	if err != nil {
		return nil, err
	}

	backends, err := config.FromRaw(raw, profileType(clean))()
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection profile")
	}

	if len(backends) == 0 {
		return nil, errors.New("empty connection profile")
	}

	return &fabricProfile{path: clean, backends: backends}, nil
}

// OpenWallet opens (and creates if needed) the file system wallet
func (f *FabricGateway) OpenWallet(path string) (core.Wallet, error) {
	wallet, err := gateway.NewFileSystemWallet(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	return &fabricWallet{wallet}, nil
}

// Connect opens the gateway for the given identity
func (f *FabricGateway) Connect(profile core.Profile, wallet core.Wallet, user types.FabricUser) (core.Connection, error) {
	p, ok := profile.(*fabricProfile)
	if !ok {
		return nil, errors.Errorf("unsupported profile type %T", profile)
	}

	w, ok := wallet.(*fabricWallet)
	if !ok {
		return nil, errors.Errorf("unsupported wallet type %T", wallet)
	}

	err := os.Setenv(discoveryEnv, strconv.FormatBool(f.AsLocalhost))
	if err != nil {
		zap.L().Warn("Error setting "+discoveryEnv+" environment variable",
			zap.Error(err))
	}

	options := make([]gateway.Option, 0)
	if f.Timeout > 0 {
		options = append(options, gateway.WithTimeout(f.Timeout))
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(p.provider()),
		gateway.WithIdentity(w.wallet, user.Label),
		options...)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("Connected to gateway",
		zap.String("profile", p.path),
		zap.String("identity", user.Label))

	return &fabricConnection{gateway: gw}, nil
}

// fabricWallet wraps the SDK wallet
type fabricWallet struct {
	wallet *gateway.Wallet
}

func (w *fabricWallet) Identity(label string) (types.FabricUser, bool, error) {
	if !w.wallet.Exists(label) {
		return types.FabricUser{}, false, nil
	}

	identity, err := w.wallet.Get(label)
	if err != nil {
		return types.FabricUser{}, false, err
	}

	user := types.FabricUser{Label: label}
	if x509, ok := identity.(*gateway.X509Identity); ok {
		user.MspID = x509.MspID
	}

	return user, true, nil
}

func (w *fabricWallet) Labels() ([]string, error) {
	return w.wallet.List()
}

// fabricConnection owns one gateway, Disconnect closes it
type fabricConnection struct {
	gateway *gateway.Gateway
}

// Contract gets the network (channel) and the contract deployed to it.
// Only an unknown channel fails here: GetContract never contacts the peers, so
// a chaincode that is not deployed is reported by Evaluate and the query fails
// with ErrEvaluation instead of ErrContractNotFound.
func (c *fabricConnection) Contract(channel, name string) (core.Contract, error) {
	network, err := c.gateway.GetNetwork(channel)
	if err != nil {
		return nil, err
	}

	contract := network.GetContract(name)
	if contract == nil {
		return nil, errors.Errorf("contract %s is not available on channel %s", name, channel)
	}

	return &fabricContract{contract}, nil
}

// Disconnect from the gateway
func (c *fabricConnection) Disconnect() {
	c.gateway.Close()
}

type fabricContract struct {
	contract *gateway.Contract
}

//Evaluate only queries one peer for its world state, the transaction is never
// sent for ordering
func (c *fabricContract) Evaluate(transaction string, args ...string) ([]byte, error) {
	return c.contract.EvaluateTransaction(transaction, args...)
}
