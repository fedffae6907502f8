package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header or stored on the client side.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to a
// [primitive.ObjectID]. It is populated during token construction or after a
// successful call to [Token.GetUserID] and avoids repeated hex parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID primitive.ObjectID `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a hex-encoded ObjectID, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or is not a valid
// ObjectID hex string.
func (t *Token) GetUserID() (primitive.ObjectID, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(userIDString)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error converting UserID from token to ObjectID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
