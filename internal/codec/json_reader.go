package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"tabular/internal/errs"
	"tabular/internal/record"
)

// ReadJSON parses a dict-of-records document. The root must be a JSON object
// and every value a flat object of scalars; key order in the document becomes
// RecordSet iteration order. Duplicate keys resolve last-wins.
func ReadJSON(data []byte) (*record.RecordSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errs.Wrap(errs.ErrSchema, "parse JSON", "expected root to be an object (top-level { ... })", nil)
	}

	rs := record.NewRecordSet()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid object key", nil)
		}

		rec, err := readRecord(dec, key)
		if err != nil {
			return nil, err
		}
		rs.Set(key, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errs.Wrap(errs.ErrParse, "parse JSON", "trailing data after root object", nil)
	}

	return rs, nil
}

func readRecord(dec *json.Decoder, key string) (*record.Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, errs.Wrap(errs.ErrSchema, "parse JSON", fmt.Sprintf("record under key %q is not an object", key), nil)
	}

	rec := record.NewRecord()
	for dec.More() {
		fieldTok, err := dec.Token()
		if err != nil {
			return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
		}
		field, ok := fieldTok.(string)
		if !ok {
			return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid object key", nil)
		}

		value, err := readScalar(dec, key, field)
		if err != nil {
			return nil, err
		}
		rec.Set(field, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
	}

	return rec, nil
}

func readScalar(dec *json.Decoder, key, field string) (record.Scalar, error) {
	tok, err := dec.Token()
	if err != nil {
		return record.Scalar{}, errs.Wrap(errs.ErrParse, "parse JSON", "invalid document", err)
	}
	switch v := tok.(type) {
	case string:
		return record.String(v), nil
	case bool:
		return record.Bool(v), nil
	case json.Number:
		return numberScalar(v), nil
	case nil:
		return record.Null(), nil
	default:
		return record.Scalar{}, errs.Wrap(errs.ErrSchema, "parse JSON",
			fmt.Sprintf("field %q of record %q is not a scalar", field, key), nil)
	}
}

// numberScalar follows the JSON lexical split: a literal with a decimal point
// or exponent is a float, everything else an integer. Integers that overflow
// int64 fall back to float.
func numberScalar(num json.Number) record.Scalar {
	text := num.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := num.Int64(); err == nil {
			return record.Int(i)
		}
	}
	f, err := num.Float64()
	if err != nil {
		return record.String(text)
	}
	return record.Float(f)
}
