package ports

// Claims is the identity payload carried by a bearer token.
type Claims struct {
	Email string
}

// TokenService issues and verifies signed bearer tokens. Trust rests
// entirely on the shared signing secret; there is no refresh or revocation.
type TokenService interface {
	// Issue signs a token embedding the claim. The expiry is fixed and long.
	Issue(claims Claims) (string, error)
	// Verify checks the signature and expiry and returns the embedded claim.
	// Fails with domain.ErrInvalidToken on any verification failure.
	Verify(token string) (*Claims, error)
}
