package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from key with go-hashid. Blank keys
// yield uuid.Nil.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RecordUUID is the stable identity of a workspace record inside a
// collection. It does not change when the record's title or slug does.
func RecordUUID(collection, recordID string) uuid.UUID {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return uuid.Nil
	}
	return UUID("site:" + strings.ToLower(strings.TrimSpace(collection)) + ":" + recordID)
}
