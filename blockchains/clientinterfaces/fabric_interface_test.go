package clientinterfaces

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"share-picture/blockchains/types"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleProfile = `{
    "name": "sp-network-org1",
    "version": "1.0.0",
    "client": {
        "organization": "Org1"
    },
    "organizations": {
        "Org1": {
            "mspid": "Org1MSP",
            "peers": ["peer0.org1.example.com"]
        }
    },
    "peers": {
        "peer0.org1.example.com": {
            "url": "grpcs://localhost:7051"
        }
    }
}`

const exampleYamlProfile = `name: sp-network-org1
version: 1.0.0
client:
  organization: Org1
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadProfile(t *testing.T) {
	f := NewFabricGateway(true, 0)

	t.Run("json profile", func(t *testing.T) {
		path := writeFile(t, "connection-org1.json", exampleProfile)

		profile, err := f.LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, path, profile.Path())

		backends := profile.(*fabricProfile).backends
		require.NotEmpty(t, backends)
		name, ok := backends[0].Lookup("name")
		assert.True(t, ok)
		assert.Equal(t, "sp-network-org1", name)
	})

	t.Run("yaml profile", func(t *testing.T) {
		path := writeFile(t, "connection-org1.yaml", exampleYamlProfile)

		_, err := f.LoadProfile(path)
		assert.NoError(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := f.LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "connection-org1.json", `{"name": "sp-network-org1",`)

		_, err := f.LoadProfile(path)
		assert.Error(t, err)
	})
}

func TestProfileType(t *testing.T) {
	assert.Equal(t, "yaml", profileType("a/b/connection.yaml"))
	assert.Equal(t, "yaml", profileType("connection.YML"))
	assert.Equal(t, "json", profileType("connection-org1.json"))
	assert.Equal(t, "json", profileType("connection"))
}

func TestFabricWallet(t *testing.T) {
	f := NewFabricGateway(false, 0)
	walletPath := filepath.Join(t.TempDir(), "wallet")

	wallet, err := f.OpenWallet(walletPath)
	require.NoError(t, err)

	t.Run("unknown label is absent, not an error", func(t *testing.T) {
		_, found, err := wallet.Identity("appUser")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("stored identity is found", func(t *testing.T) {
		sdkWallet := wallet.(*fabricWallet).wallet
		require.NoError(t, sdkWallet.Put("appUser", gateway.NewX509Identity("Org1MSP", "cert", "key")))

		user, found, err := wallet.Identity("appUser")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, types.FabricUser{Label: "appUser", MspID: "Org1MSP"}, user)

		labels, err := wallet.Labels()
		require.NoError(t, err)
		assert.Equal(t, []string{"appUser"}, labels)
	})

	t.Run("reopening is idempotent", func(t *testing.T) {
		reopened, err := f.OpenWallet(walletPath)
		require.NoError(t, err)

		_, found, err := reopened.Identity("appUser")
		require.NoError(t, err)
		assert.True(t, found)
	})
}

type otherProfile struct{}

func (otherProfile) Path() string { return "" }

func TestConnectRejectsForeignTypes(t *testing.T) {
	f := NewFabricGateway(true, 0)

	wallet, err := f.OpenWallet(filepath.Join(t.TempDir(), "wallet"))
	require.NoError(t, err)

	_, err = f.Connect(otherProfile{}, wallet, types.FabricUser{Label: "appUser"})
	assert.Error(t, err)
}
