package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Phase identifies the step of a query that failed.
type Phase string

const (
	PhaseRequest  Phase = "request"
	PhaseConfig   Phase = "config"
	PhaseIdentity Phase = "identity"
	PhaseConnect  Phase = "connect"
	PhaseResolve  Phase = "resolve"
	PhaseEvaluate Phase = "evaluate"
	PhaseVerify   Phase = "verify"
)

// Kinds of query failure. None of them is retried.
var (
	ErrInvalidRequest     = errors.New("invalid query request")
	ErrConfigLoad         = errors.New("failed to load configuration")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrConnection         = errors.New("failed to connect to gateway")
	ErrContractNotFound   = errors.New("contract not found")
	ErrEvaluation         = errors.New("failed to evaluate transaction")
	ErrInconsistentResult = errors.New("inconsistent query result")
)

// QueryError is returned by every failing QueryClient operation.
// errors.Is matches its Kind, errors.Unwrap returns the underlying cause.
type QueryError struct {
	Phase Phase
	Kind  error
	Err   error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Phase, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Phase, e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return e.Kind == target
}

func newQueryError(phase Phase, kind error, cause error) *QueryError {
	return &QueryError{Phase: phase, Kind: kind, Err: cause}
}

// PhaseOf returns the phase a query failed in, or "" when err did not come
// from a QueryClient.
func PhaseOf(err error) Phase {
	var qerr *QueryError

	if errors.As(err, &qerr) {
		return qerr.Phase
	}

	return ""
}
