package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates JWTs (RS256).
type TokenIssuer interface {
	IssueAccessToken(userID, email string, expiresInSeconds int64) (string, error)
	// ValidateAccessToken returns the user ID and email carried by the token.
	ValidateAccessToken(tokenString string) (userID, email string, err error)
}
