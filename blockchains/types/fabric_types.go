package types

import (
	"github.com/pkg/errors"
)

// Transactions exposed by the sp-logic chaincode that the client is allowed to evaluate.
const (
	TxQueryPicture     = "queryPicture"
	TxQueryAllPictures = "queryAllPictures"
)

// QueryRequest represents all the necessary information for a read-only
// Hyperledger Fabric evaluation
type QueryRequest struct {
	Channel     string   `json:"channel"`     // channel the contract is deployed to
	Contract    string   `json:"contract"`    // name of the chaincode/smart contract
	Transaction string   `json:"transaction"` // name of the function to be evaluated in the chaincode
	Args        []string `json:"args"`        // arguments to evaluate the chaincode with
}

// NewQueryRequest builds a request, the argument slice is copied so that the
// caller can't mutate the request after construction.
func NewQueryRequest(channel, contract, transaction string, args ...string) QueryRequest {
	copied := make([]string, len(args))
	copy(copied, args)

	return QueryRequest{
		Channel:     channel,
		Contract:    contract,
		Transaction: transaction,
		Args:        copied,
	}
}

// QueryPicture requires 1 argument, the picture identifier (e.g. "PICTURE4")
func QueryPicture(channel, contract, pictureID string) QueryRequest {
	return NewQueryRequest(channel, contract, TxQueryPicture, pictureID)
}

// QueryAllPictures requires no arguments
func QueryAllPictures(channel, contract string) QueryRequest {
	return NewQueryRequest(channel, contract, TxQueryAllPictures)
}

// Validate checks that the request names everything the gateway needs to
// resolve the contract.
func (r QueryRequest) Validate() error {
	if r.Channel == "" {
		return errors.New("missing channel name")
	}

	if r.Contract == "" {
		return errors.New("missing contract name")
	}

	if r.Transaction == "" {
		return errors.New("missing transaction name")
	}

	if r.Transaction == TxQueryPicture && (len(r.Args) != 1 || r.Args[0] == "") {
		return errors.Errorf("%s requires exactly 1 argument, got %d", TxQueryPicture, len(r.Args))
	}

	if r.Transaction == TxQueryAllPictures && len(r.Args) != 0 {
		return errors.Errorf("%s takes no arguments, got %d", TxQueryAllPictures, len(r.Args))
	}

	return nil
}

// FabricUser contains the label under which an identity is stored in the wallet and
// the MSP it belongs to.
type FabricUser struct {
	Label string `json:"label"`
	MspID string `json:"mspId"`
}
