package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier used for provenance fingerprints.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RuleTypeInductive tags rules mined from labeled examples, as opposed to
// rules authored by hand in the downstream reasoning runtime.
const RuleTypeInductive = "inductive"

// Example is a labeled premise/conclusion pair used for rule induction.
// Both fields are treated as sets: element order and duplicates carry no
// meaning. A missing field decodes as nil and is handled as an empty set.
type Example struct {
	Premise    []string `json:"premise"`
	Conclusion []string `json:"conclusion"`
}

// Rule is a learned inductive rule, the final output of the induction
// pipeline. Premise and Conclusion hold the first-seen representative
// lists verbatim, not the canonicalized form.
type Rule struct {
	Id         string   `json:"id"`
	Premise    []string `json:"premise"`
	Conclusion []string `json:"conclusion"`
	Confidence float64  `json:"confidence"`
	Weight     float64  `json:"weight"`
	Type       string   `json:"type"`
}

// TrainingRun records the provenance of one trainer invocation for the
// optional run archive. It is metadata only; the JSON artifact files
// remain the pipeline outputs.
type TrainingRun struct {
	Id               string // ULID, assigned by the archive on insert
	Task             string
	CreatedAt        time.Time
	ConceptCount     int
	ExampleCount     int
	RuleCount        int
	Dimension        int
	EncoderAvailable bool
	EncoderModel     string
	InputsId         ID // fingerprint of the resolved input lists
}
