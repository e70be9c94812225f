package auth

import (
	"context"
	"encoding/base64"
)

// CredentialProvider yields the Authorization header value sent with every
// gateway request.
type CredentialProvider interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// BasicCredential authenticates with an account secret key. The header is
// the base64 encoding of "secretKey:" with an empty password, prefixed with
// the Basic scheme.
type BasicCredential struct {
	secretKey string
}

// NewBasicCredential creates a credential provider for a secret key.
func NewBasicCredential(secretKey string) *BasicCredential {
	return &BasicCredential{secretKey: secretKey}
}

// AuthorizationHeader implements CredentialProvider.
func (c *BasicCredential) AuthorizationHeader(ctx context.Context) (string, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))

	return "Basic " + encoded, nil
}

// BearerCredential authenticates with a pre-issued access token.
type BearerCredential struct {
	token string
}

// NewBearerCredential creates a credential provider for an access token.
func NewBearerCredential(token string) *BearerCredential {
	return &BearerCredential{token: token}
}

// AuthorizationHeader implements CredentialProvider.
func (c *BearerCredential) AuthorizationHeader(ctx context.Context) (string, error) {
	return "Bearer " + c.token, nil
}
