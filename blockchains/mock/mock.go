package mock


import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"share-picture/blockchains/types"
	"share-picture/contracts/fabric/sharepicture"
	"share-picture/core"

	"github.com/pkg/errors"
)


// Gateway is an in-memory core.Gateway serving the sp-logic transactions.
// Every step can be forced to fail and every call is counted, so tests can
// check which steps of a query ran and that connections are released.
type Gateway struct {
	Channel   string                          // only channel known to the network
	Contract  string                          // only contract deployed on Channel
	Ledger    map[string]sharepicture.Picture // world state
	Users     map[string]types.FabricUser     // wallet content, by label

	ProfileErr   error
	WalletErr    error
	IdentityErr  error
	ConnectErr   error
	EvaluateErr  error

	lock         sync.Mutex
	profiles     int
	wallets      int
	lookups      int
	opened       int
	closed       int
	evaluated    int
}

// NewGateway returns a network with the sp-logic contract deployed on
// `channel`, an empty ledger and an empty wallet.
func NewGateway(channel, contract string) *Gateway {
	return &Gateway{
		Channel:  channel,
		Contract: contract,
		Ledger:   make(map[string]sharepicture.Picture),
		Users:    make(map[string]types.FabricUser),
	}
}

// InitLedger stores the chaincode initial pictures.
func (this *Gateway) InitLedger() *Gateway {
	var picture sharepicture.Picture
	var i int

	this.lock.Lock()
	defer this.lock.Unlock()

	for i, picture = range sharepicture.InitialPictures() {
		this.Ledger[sharepicture.PictureKey(i)] = picture
	}

	return this
}

// Enroll stores an identity in the wallet.
func (this *Gateway) Enroll(label, mspID string) *Gateway {
	this.lock.Lock()
	defer this.lock.Unlock()

	this.Users[label] = types.FabricUser{ Label: label, MspID: mspID }

	return this
}

func (this *Gateway) ProfileLoads() int { return this.count(&this.profiles) }
func (this *Gateway) WalletOpens() int { return this.count(&this.wallets) }
func (this *Gateway) IdentityLookups() int { return this.count(&this.lookups) }
func (this *Gateway) Opened() int { return this.count(&this.opened) }
func (this *Gateway) Closed() int { return this.count(&this.closed) }
func (this *Gateway) Evaluated() int { return this.count(&this.evaluated) }

func (this *Gateway) count(counter *int) int {
	this.lock.Lock()
	defer this.lock.Unlock()
	return *counter
}

func (this *Gateway) incr(counter *int) {
	this.lock.Lock()
	defer this.lock.Unlock()
	*counter += 1
}


type profile struct {
	path  string
}

func (this *profile) Path() string {
	return this.path
}

func (this *Gateway) LoadProfile(path string) (core.Profile, error) {
	this.incr(&this.profiles)

	if this.ProfileErr != nil {
		return nil, this.ProfileErr
	}

	if len(path) == 0 {
		return nil, errors.New("empty profile path")
	}

	return &profile{ path }, nil
}


type wallet struct {
	gateway  *Gateway
}

func (this *Gateway) OpenWallet(path string) (core.Wallet, error) {
	this.incr(&this.wallets)

	if this.WalletErr != nil {
		return nil, this.WalletErr
	}

	return &wallet{ this }, nil
}

func (this *wallet) Identity(label string) (types.FabricUser, bool, error) {
	var user types.FabricUser
	var ok bool

	this.gateway.incr(&this.gateway.lookups)

	if this.gateway.IdentityErr != nil {
		return user, false, this.gateway.IdentityErr
	}

	this.gateway.lock.Lock()
	defer this.gateway.lock.Unlock()

	user, ok = this.gateway.Users[label]

	return user, ok, nil
}

func (this *wallet) Labels() ([]string, error) {
	var labels []string
	var label string

	this.gateway.lock.Lock()
	defer this.gateway.lock.Unlock()

	labels = make([]string, 0, len(this.gateway.Users))
	for label = range this.gateway.Users {
		labels = append(labels, label)
	}

	return labels, nil
}


type connection struct {
	gateway  *Gateway
}

func (this *Gateway) Connect(p core.Profile, w core.Wallet, user types.FabricUser) (core.Connection, error) {
	if this.ConnectErr != nil {
		return nil, this.ConnectErr
	}

	this.lock.Lock()
	_, known := this.Users[user.Label]
	this.lock.Unlock()

	if !known {
		return nil, errors.Errorf("identity %s is not enrolled", user.Label)
	}

	this.incr(&this.opened)

	return &connection{ this }, nil
}

func (this *connection) Contract(channel, name string) (core.Contract, error) {
	if channel != this.gateway.Channel {
		return nil, errors.Errorf("channel %s not found", channel)
	}

	if name != this.gateway.Contract {
		return nil, errors.Errorf("chaincode %s not found on channel %s", name, channel)
	}

	return &contract{ this.gateway }, nil
}

// Every call is counted so that double releases show up in tests.
func (this *connection) Disconnect() {
	this.gateway.incr(&this.gateway.closed)
}


type contract struct {
	gateway  *Gateway
}

// Transaction names match regardless of the case of their first letter, the
// way the Go chaincode exposes QueryPicture as queryPicture.
func sameTransaction(a, b string) bool {
	if len(a) == 0 || len(b) == 0 {
		return a == b
	}

	return strings.EqualFold(a[:1], b[:1]) && a[1:] == b[1:]
}

func (this *contract) Evaluate(transaction string, args ...string) ([]byte, error) {
	this.gateway.incr(&this.gateway.evaluated)

	if this.gateway.EvaluateErr != nil {
		return nil, this.gateway.EvaluateErr
	}

	if sameTransaction(transaction, types.TxQueryPicture) {
		return this.queryPicture(args)
	}

	if sameTransaction(transaction, types.TxQueryAllPictures) {
		return this.queryAllPictures(args)
	}

	return nil, errors.Errorf("function %s not found in contract %s",
		transaction, this.gateway.Contract)
}

func (this *contract) queryPicture(args []string) ([]byte, error) {
	var picture sharepicture.Picture
	var ok bool

	if len(args) != 1 {
		return nil, errors.Errorf("incorrect number of params, " +
			"expected 1, received %d", len(args))
	}

	this.gateway.lock.Lock()
	picture, ok = this.gateway.Ledger[args[0]]
	this.gateway.lock.Unlock()

	if !ok {
		return nil, errors.Errorf("%s does not exist", args[0])
	}

	return json.Marshal(picture)
}

func (this *contract) queryAllPictures(args []string) ([]byte, error) {
	var results []sharepicture.QueryResult
	var keys []string
	var key string

	if len(args) != 0 {
		return nil, errors.Errorf("incorrect number of params, " +
			"expected 0, received %d", len(args))
	}

	this.gateway.lock.Lock()
	defer this.gateway.lock.Unlock()

	keys = make([]string, 0, len(this.gateway.Ledger))
	for key = range this.gateway.Ledger {
		keys = append(keys, key)
	}

	// range queries return keys in lexical order
	sort.Strings(keys)

	results = make([]sharepicture.QueryResult, 0, len(keys))
	for _, key = range keys {
		picture := this.gateway.Ledger[key]
		results = append(results, sharepicture.QueryResult{
			Key:    key,
			Record: &picture,
		})
	}

	return json.Marshal(results)
}
