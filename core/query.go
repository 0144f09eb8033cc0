package core

import (
	"sort"

	"share-picture/blockchains/types"

	"github.com/pkg/errors"
)

// QueryClient evaluates read-only transactions against a ledger through a
// Gateway. A QueryClient holds no connection between calls: every Query
// opens its own and releases it before returning, so concurrent calls never
// share a connection.
type QueryClient struct {
	gateway Gateway
	logger  Logger
}

func NewQueryClient(gateway Gateway, logger Logger) *QueryClient {
	if logger == nil {
		logger = NoLogger()
	}

	return &QueryClient{
		gateway: gateway,
		logger:  logger,
	}
}

// Query loads the profile, resolves `label` from the wallet at `walletPath`,
// connects, evaluates `request` and disconnects.
// Failures are returned as *QueryError, no partial result is ever returned.
func (c *QueryClient) Query(profilePath, walletPath, label string, request types.QueryRequest) (QueryResult, error) {
	if err := request.Validate(); err != nil {
		return nil, newQueryError(PhaseRequest, ErrInvalidRequest, err)
	}

	c.logger.Debugf("loading connection profile %s", profilePath)

	profile, err := c.gateway.LoadProfile(profilePath)
	if err != nil {
		return nil, newQueryError(PhaseConfig, ErrConfigLoad,
			errors.Wrapf(err, "connection profile %s", profilePath))
	}

	c.logger.Debugf("wallet path: %s", walletPath)

	wallet, err := c.gateway.OpenWallet(walletPath)
	if err != nil {
		return nil, newQueryError(PhaseConfig, ErrConfigLoad,
			errors.Wrapf(err, "wallet %s", walletPath))
	}

	user, found, err := wallet.Identity(label)
	if err != nil {
		return nil, newQueryError(PhaseIdentity, ErrIdentityNotFound,
			errors.Wrapf(err, "cannot read identity %q", label))
	}

	if !found {
		return nil, newQueryError(PhaseIdentity, ErrIdentityNotFound,
			errors.Errorf("an identity for the user %q does not exist in the wallet; "+
				"run the enrollment step (registerUser) before retrying", label))
	}

	c.logger.Debugf("connecting as %s (%s)", user.Label, user.MspID)

	conn, err := c.gateway.Connect(profile, wallet, user)
	if err != nil {
		return nil, newQueryError(PhaseConnect, ErrConnection, err)
	}
	defer conn.Disconnect()

	contract, err := conn.Contract(request.Channel, request.Contract)
	if err != nil {
		return nil, newQueryError(PhaseResolve, ErrContractNotFound,
			errors.Wrapf(err, "contract %s on channel %s", request.Contract, request.Channel))
	}

	c.logger.Debugf("evaluating %s%v on %s/%s", request.Transaction, request.Args,
		request.Channel, request.Contract)

	payload, err := contract.Evaluate(request.Transaction, request.Args...)
	if err != nil {
		return nil, newQueryError(PhaseEvaluate, ErrEvaluation,
			errors.Wrap(err, request.Transaction))
	}

	c.logger.Infof("transaction %s has been evaluated (%d bytes)", request.Transaction, len(payload))

	return QueryResult(payload), nil
}

// Verify runs the same query `rounds` times, each with its own connection,
// and checks the results are byte-identical. It returns the first result and
// its digest.
func (c *QueryClient) Verify(profilePath, walletPath, label string, request types.QueryRequest, rounds int) (QueryResult, Digest, error) {
	var first QueryResult
	var expected Digest

	logger := c.logger.Extend("verify")

	if rounds < 1 {
		return nil, Digest{}, newQueryError(PhaseRequest, ErrInvalidRequest,
			errors.Errorf("rounds must be at least 1, got %d", rounds))
	}

	for round := 0; round < rounds; round++ {
		result, err := c.Query(profilePath, walletPath, label, request)
		if err != nil {
			return nil, Digest{}, err
		}

		digest := result.Digest()

		if round == 0 {
			first, expected = result, digest
			continue
		}

		logger.Tracef("round %d digest %s", round, digest)

		if digest != expected {
			return nil, Digest{}, newQueryError(PhaseVerify, ErrInconsistentResult,
				errors.Errorf("round %d returned %s, round 0 returned %s", round, digest, expected))
		}
	}

	return first, expected, nil
}

// Identities lists the identities of the wallet at `walletPath`, sorted by label.
func (c *QueryClient) Identities(walletPath string) ([]types.FabricUser, error) {
	wallet, err := c.gateway.OpenWallet(walletPath)
	if err != nil {
		return nil, newQueryError(PhaseConfig, ErrConfigLoad,
			errors.Wrapf(err, "wallet %s", walletPath))
	}

	labels, err := wallet.Labels()
	if err != nil {
		return nil, newQueryError(PhaseConfig, ErrConfigLoad,
			errors.Wrapf(err, "wallet %s", walletPath))
	}

	sort.Strings(labels)

	users := make([]types.FabricUser, 0, len(labels))
	for _, label := range labels {
		user, found, err := wallet.Identity(label)
		if err != nil {
			return nil, newQueryError(PhaseIdentity, ErrIdentityNotFound,
				errors.Wrapf(err, "cannot read identity %q", label))
		}

		if !found {
			continue
		}

		users = append(users, user)
	}

	return users, nil
}
