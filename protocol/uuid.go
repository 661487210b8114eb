package protocol

import "github.com/google/uuid"

// OfflinePlayerUUID derives the deterministic offline-mode UUID a vanilla
// server computes for a username: a name-based (v3/MD5) UUID of the string
// "OfflinePlayer:<username>" under the DNS namespace. This exact string and
// namespace must be preserved to match server-side expectations.
func OfflinePlayerUUID(username string) UUID {
	return UUID(uuid.NewMD5(uuid.NameSpaceDNS, []byte("OfflinePlayer:"+username)))
}
