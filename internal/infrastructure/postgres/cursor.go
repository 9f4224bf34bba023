package postgres

import (
	"encoding/base64"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
)

// The list cursor is the last-seen primary key, base64-encoded so clients
// treat it as opaque and pass it back verbatim.

func encodeCursor(lastID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(lastID))
}

func decodeCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", derrors.Application("invalid pagination cursor")
	}
	return string(b), nil
}
