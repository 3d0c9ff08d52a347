package repo

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const idLength = 7

// NewCommitID mints a short id for a commit about to be appended. The id is
// a truncated SHA-256 over the commit fields; on the (unlikely) collision
// with an existing id a counter is folded in and the hash re-rolled. Ids are
// opaque everywhere else in the engine.
func NewCommitID(s *Snapshot, message, parentID string, timestamp int64) string {
	for n := 0; ; n++ {
		payload := strings.Join([]string{
			parentID,
			message,
			strconv.FormatInt(timestamp, 10),
			strconv.Itoa(n),
		}, "\n")
		sum := sha256.Sum256([]byte(payload))
		id := hex.EncodeToString(sum[:])[:idLength]
		if _, taken := s.FindCommit(id); !taken {
			return id
		}
	}
}
