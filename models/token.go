package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued on registration and login.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (sub, iss, exp,
// iat) and adds the username so that a token is self-describing: the "sub"
// claim carries the user ID and Username carries the login identifier.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login identifier of the token's owner.
	Username string `json:"username"`
}

// Token wraps a signed JWT with the identity fields decoded from its claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and Username are parsed copies of the claims, populated during
// generation or validation so callers never touch the raw claim set.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the owner login extracted from the "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
