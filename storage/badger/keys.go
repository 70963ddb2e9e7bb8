package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	runRecordPrefix = "trnrun"
	runRulePrefix   = "trnrul"
)

// makeRunKey generates a key for a training run by Id. ULID ids sort
// lexicographically by creation time, so iterating this prefix yields
// runs in chronological order.
func makeRunKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", runRecordPrefix, id))
}

// makeRunRuleKey generates a composite key for a rule archived under a
// run. Format: prefix:runID:index
func makeRunRuleKey(runID string, index int) []byte {
	prefix := fmt.Sprintf("%s:%s:", runRulePrefix, runID)
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+4)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort preserves rule order
	binary.BigEndian.PutUint32(buf[offset:], uint32(index))
	return buf
}

// makePartialRunRuleKey generates a prefix for iterating a run's rules.
func makePartialRunRuleKey(runID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", runRulePrefix, runID))
}
