package codec

import (
	"io"

	"tabular/internal/record"
)

const jsonIndent = "    "

// WriteJSON renders the RecordSet as a pretty-printed JSON object: four-space
// indent, keys in insertion order, non-ASCII text untouched, trailing
// newline. The output is what to-json produces on disk.
func WriteJSON(w io.Writer, rs *record.RecordSet) error {
	_, err := w.Write(AppendJSON(nil, rs))
	return err
}

// AppendJSON appends the rendered document to dst and returns the result.
func AppendJSON(dst []byte, rs *record.RecordSet) []byte {
	keys := rs.Keys()
	if len(keys) == 0 {
		return append(dst, "{}\n"...)
	}

	dst = append(dst, '{')
	for ki, key := range keys {
		if ki > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '\n')
		dst = append(dst, jsonIndent...)
		dst = appendJSONKey(dst, key)

		rec, _ := rs.Get(key)
		dst = appendRecord(dst, rec)
	}
	dst = append(dst, '\n', '}', '\n')
	return dst
}

func appendRecord(dst []byte, rec *record.Record) []byte {
	fields := rec.Fields()
	if len(fields) == 0 {
		return append(dst, '{', '}')
	}

	dst = append(dst, '{')
	for fi, field := range fields {
		if fi > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '\n')
		dst = append(dst, jsonIndent...)
		dst = append(dst, jsonIndent...)
		dst = appendJSONKey(dst, field)

		value, _ := rec.Get(field)
		dst = value.AppendJSON(dst)
	}
	dst = append(dst, '\n')
	dst = append(dst, jsonIndent...)
	return append(dst, '}')
}

func appendJSONKey(dst []byte, key string) []byte {
	dst = record.String(key).AppendJSON(dst)
	return append(dst, ':', ' ')
}
