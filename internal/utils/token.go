package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mvelasco/cryptofolio/models"
)

// EncodeSessionToken serializes a session token to its wire form: standard
// base64 over the JSON claims. This is an opaque identifier, not a signed
// credential; confidentiality at rest comes from the session record's
// AES-GCM encryption, not from the encoding.
func EncodeSessionToken(token models.SessionToken) (string, error) {
	payload, err := json.Marshal(token)
	if err != nil {
		return "", fmt.Errorf("error encoding session token: %w", err)
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecodeSessionToken parses the wire form produced by [EncodeSessionToken].
// Returns an error if the base64 or JSON layer is malformed, or if the
// subject claim is empty.
func DecodeSessionToken(raw string) (models.SessionToken, error) {
	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error decoding session token: %w", err)
	}

	var token models.SessionToken
	if err := json.Unmarshal(payload, &token); err != nil {
		return models.SessionToken{}, fmt.Errorf("error parsing session token: %w", err)
	}

	if token.Subject == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
