package core


import (
	"share-picture/blockchains/types"
)


// Profile is a loaded connection profile.
// It is opaque to the core: only the Gateway that produced it knows how to
// use it.
type Profile interface {
	// Path the profile was loaded from.
	//
	Path() string
}


// Gateway is the pluggable ledger backend used by the QueryClient.
// Each method maps to one I/O boundary of a query so that every step can be
// substituted independently in tests.
type Gateway interface {
	// Load and parse the connection profile at `path`.
	// Must fail if the file is unreadable or is not a valid profile.
	//
	LoadProfile(path string) (Profile, error)

	// Open the credential store rooted at `path`, creating it if it does
	// not exist.
	//
	OpenWallet(path string) (Wallet, error)

	// Open an authenticated connection to the network described by
	// `profile` using the identity stored under `user.Label` in `wallet`.
	// On error no connection exists and nothing must be released.
	//
	Connect(profile Profile, wallet Wallet, user types.FabricUser) (Connection, error)
}

type Wallet interface {
	// Look up the identity stored under `label`.
	// An unknown label is not an error: `found` is false and err is nil.
	//
	Identity(label string) (user types.FabricUser, found bool, err error)

	// Labels of every identity in the store.
	//
	Labels() ([]string, error)
}

type Connection interface {
	// Resolve the contract `name` deployed on `channel`.
	//
	Contract(channel, name string) (Contract, error)

	// Release the connection.
	//
	Disconnect()
}

type Contract interface {
	// Evaluate a read-only transaction. Nothing is sent to the orderer
	// and the ledger state is never modified.
	//
	Evaluate(transaction string, args ...string) ([]byte, error)
}
