package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set carried by every access token.
//
// It extends the standard registered claims (sub, exp, iat, iss, jti) with the
// user's email. The subject holds the user ID encoded as a base-10 string and
// the jti is a UUID used as the revocation key after logout.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the address of the user the token was issued for.
	Email string `json:"email"`
}

// Token wraps a parsed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and TokenID are parsed copies of the "sub" and "jti" claims cached at
// issue/parse time so that callers do not re-inspect the raw claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the address extracted from the "email" claim.
	Email string `json:"-"`

	// TokenID is the "jti" claim. Logout inserts this value into the
	// revoked-token set; the auth middleware rejects tokens whose TokenID
	// is a member of that set.
	TokenID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
