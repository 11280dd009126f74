package domain

import "fmt"

// EngineError is the unified error type for the engine.
// Each error has a numeric code and human-readable message.
type EngineError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error %d: %s", e.Code, e.Message)
}

// NewEngineError creates a new EngineError.
func NewEngineError(code int, msg string) *EngineError {
	return &EngineError{Code: code, Message: msg}
}

// WrapEngineError creates an EngineError that includes a cause.
func WrapEngineError(code int, msg string, cause error) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf("%s: %v", msg, cause)}
}

// ---- Session store errors (-32010 to -32039) ----

var (
	ErrInvalidInput    = &EngineError{Code: -32010, Message: "commander name must be 1-30 characters"}
	ErrSessionNotFound = &EngineError{Code: -32011, Message: "game not found"}
	ErrGameAlreadyOver = &EngineError{Code: -32012, Message: "game is already over"}
	ErrSessionLimit    = &EngineError{Code: -32013, Message: "maximum active sessions reached"}
)

// ---- Choice resolution errors (-32040 to -32069) ----

var (
	ErrInvalidChoice       = &EngineError{Code: -32040, Message: "option is not currently offered or not available"}
	ErrInsufficientCredits = &EngineError{Code: -32041, Message: "not enough credits for this option"}
	ErrLedgerInvariant     = &EngineError{Code: -32042, Message: "ledger invariant violated"}
	ErrCatalogMismatch     = &EngineError{Code: -32043, Message: "offered option has no catalog template"}
)

// ---- Store / Config errors (-32130 to -32159) ----

var (
	ErrStoreInit     = &EngineError{Code: -32130, Message: "failed to initialize archive"}
	ErrStoreQuery    = &EngineError{Code: -32131, Message: "archive query failed"}
	ErrStoreWrite    = &EngineError{Code: -32132, Message: "archive write failed"}
	ErrConfigInvalid = &EngineError{Code: -32136, Message: "invalid configuration"}
)
