// Package roundtrip checks that a RecordSet survives the encode-then-decode
// pipeline without loss.
package roundtrip

import (
	"fmt"

	"tabular/internal/codec"
	"tabular/internal/fields"
	"tabular/internal/record"
)

// Divergence describes the first key whose record changed across the
// round-trip, with both versions for diagnostics.
type Divergence struct {
	Key       string
	Original  *record.Record
	Roundtrip *record.Record
}

// Result reports the outcome of a round-trip verification.
type Result struct {
	Pass   bool
	Fields []string

	// MissingKeys are present in the original but absent after the
	// round-trip; ExtraKeys appeared only after it.
	MissingKeys []string
	ExtraKeys   []string

	// First is the first divergent record in original iteration order, nil
	// when only the key sets differ or the sets match.
	First *Divergence
}

// Verify encodes the RecordSet to CSV text, decodes it back with the given
// inference setting, and deep-compares the result against the original.
// Equality is exact: an original integer must come back as an integer, which
// is why inference materially changes the outcome for typed inputs.
func Verify(original *record.RecordSet, inferTypes bool) (Result, error) {
	fieldList, err := fields.FromRecords(original)
	if err != nil {
		return Result{}, fmt.Errorf("verify failed during conversion: %w", err)
	}

	csvText, err := codec.EncodeCSV(original, fieldList)
	if err != nil {
		return Result{}, fmt.Errorf("verify failed during conversion: %w", err)
	}

	decoded, _, err := codec.DecodeCSV(csvText, inferTypes)
	if err != nil {
		return Result{}, fmt.Errorf("verify failed during conversion: %w", err)
	}

	result := Result{Fields: fieldList}
	for _, key := range original.Keys() {
		if !decoded.Has(key) {
			result.MissingKeys = append(result.MissingKeys, key)
		}
	}
	for _, key := range decoded.Keys() {
		if !original.Has(key) {
			result.ExtraKeys = append(result.ExtraKeys, key)
		}
	}
	for _, key := range original.Keys() {
		after, ok := decoded.Get(key)
		if !ok {
			continue
		}
		before, _ := original.Get(key)
		if !before.Equal(after) {
			result.First = &Divergence{Key: key, Original: before, Roundtrip: after}
			break
		}
	}

	result.Pass = len(result.MissingKeys) == 0 && len(result.ExtraKeys) == 0 && result.First == nil
	return result, nil
}
