package codec

import (
	"math"
	"strconv"
	"strings"

	"tabular/internal/record"
)

// DecodeCell turns a CSV cell into a typed scalar. With inference disabled
// the raw cell text is stored untouched. With inference enabled the probes
// run in order against a trimmed copy of the cell, first match wins:
//
//  1. empty after trimming -> empty string
//  2. base-10 integer      -> int
//  3. floating point       -> float
//  4. true/false (any case) -> bool
//  5. anything else        -> the original, untrimmed text
//
// Only the probe input is trimmed; the stored string keeps its whitespace.
// DecodeCell never fails.
func DecodeCell(text string, inferTypes bool) record.Scalar {
	if !inferTypes {
		return record.String(text)
	}

	probe := strings.TrimSpace(text)
	if probe == "" {
		return record.String("")
	}
	if i, err := strconv.ParseInt(probe, 10, 64); err == nil {
		return record.Int(i)
	}
	if f, err := strconv.ParseFloat(probe, 64); err == nil {
		// Inf and NaN have no JSON form; keep them as text.
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return record.Float(f)
		}
	}
	switch strings.ToLower(probe) {
	case "true":
		return record.Bool(true)
	case "false":
		return record.Bool(false)
	}
	return record.String(text)
}
