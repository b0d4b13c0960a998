package entities

// MinUserIDLength is a sanity floor against malformed or truncated subject
// ids coming out of the token; real provider ids are UUID-sized.
const MinUserIDLength = 10

// Identity is the verified caller as extracted from the auth token.
type Identity struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Valid reports whether the identity can own rows at all.
func (i *Identity) Valid() bool {
	return i != nil && len(i.ID) >= MinUserIDLength
}
