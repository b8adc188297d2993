// Package record defines the in-memory data model for dict-of-records data.
//
// A RecordSet maps id keys to Records, a Record maps field names to Scalars,
// and both preserve insertion order because row and column order carry
// meaning in the CSV output. Scalar is a tagged variant (string, int, float,
// bool, null) with exact, type-sensitive equality: round-trip verification
// depends on an integer never comparing equal to its textual form.
package record
