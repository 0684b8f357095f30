package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeForbidden          = "forbidden"
	ErrCodeIncomplete         = "contract_incomplete"
	ErrCodeInvalidState       = "invalid_state"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeInternal           = "internal_error"
)
