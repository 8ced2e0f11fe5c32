package driftline

import (
	"crypto/sha256"
	"encoding/hex"
)

// uidLength is the number of hex characters kept from the digest.
const uidLength = 12

// DeriveUIDFromDID maps a decentralized identifier to the pseudonymous
// identifier carried in analytics records. It hashes the UTF-8 bytes of
// salt+did (salt first, no separator) with SHA-256 and keeps the first 12
// characters of the lowercase hex digest.
//
// The same (did, salt) pair always yields the same identifier, while
// distinct salts yield unrelated identifiers for the same DID, so
// independently salted app views cannot correlate a user. The function is
// pure and safe for concurrent use.
func DeriveUIDFromDID(did, salt string) string {
	sum := sha256.Sum256([]byte(salt + did))
	return hex.EncodeToString(sum[:])[:uidLength]
}
