package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	// Lifecycle.
	ErrContractNotFound     = errors.New("contract not found")
	ErrIncomplete           = errors.New("contract is incomplete and cannot be sent for signature")
	ErrInvalidState         = errors.New("operation not allowed in the contract's current status")
	ErrCannotCancelExecuted = errors.New("contract is active and signed by all parties, it cannot be cancelled")
	ErrPartyEmailNotFound   = errors.New("email does not match any party of the contract")
	ErrDuplicatePartyEmail  = errors.New("party emails must be unique within a contract")
	ErrNotOwner             = errors.New("user is not the owner of this contract")

	// Templates.
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplatePrivate  = errors.New("template is not publicly available")

	// Owner identity.
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)
