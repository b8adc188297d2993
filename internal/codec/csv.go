package codec

import (
	"encoding/csv"
	"fmt"
	"strings"

	"tabular/internal/errs"
	"tabular/internal/fields"
	"tabular/internal/record"
)

// EncodeCSV renders the RecordSet as comma-delimited CSV text: a header row
// equal to fieldList, then one row per entry in insertion order. The id
// column carries the entry key; absent fields encode as the empty cell.
// Quoting follows RFC 4180 via encoding/csv.
func EncodeCSV(rs *record.RecordSet, fieldList []string) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(fieldList); err != nil {
		return "", errs.Wrap(errs.ErrParse, "encode CSV", "write header", err)
	}

	row := make([]string, len(fieldList))
	for _, key := range rs.Keys() {
		rec, ok := rs.Get(key)
		if !ok || rec == nil {
			return "", errs.Wrap(errs.ErrSchema, "encode CSV", fmt.Sprintf("record under key %q is not an object", key), nil)
		}
		for i, field := range fieldList {
			if field == fields.ID {
				row[i] = key
				continue
			}
			if value, ok := rec.Get(field); ok {
				row[i] = value.Text()
			} else {
				row[i] = ""
			}
		}
		if err := w.Write(row); err != nil {
			return "", errs.Wrap(errs.ErrParse, "encode CSV", fmt.Sprintf("write row %q", key), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errs.Wrap(errs.ErrParse, "encode CSV", "flush", err)
	}
	return buf.String(), nil
}

// DecodeCSV parses CSV text back into a RecordSet. The header row is
// authoritative: the effective field list is re-derived from it, with id
// required. Each row's id cell is trimmed and becomes the entry key; a blank
// id is a validation error. Cells missing from short rows default to the
// empty string before decoding. Duplicate ids resolve last-wins, since
// RecordSet keys must be unique.
func DecodeCSV(text string, inferTypes bool) (*record.RecordSet, []string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, errs.Wrap(errs.ErrParse, "parse CSV", "invalid document", err)
	}
	if len(rows) == 0 {
		return nil, nil, errs.Wrap(errs.ErrSchema, "parse CSV", "CSV has no header row (file is empty)", nil)
	}

	header := rows[0]
	fieldList, err := fields.FromHeader(header)
	if err != nil {
		return nil, nil, err
	}

	// Column positions by header name; a repeated non-id header resolves to
	// its last occurrence, matching dict-style readers.
	position := make(map[string]int, len(header))
	for i, name := range header {
		position[name] = i
	}

	cell := func(row []string, field string) string {
		idx, ok := position[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	rs := record.NewRecordSet()
	for n, row := range rows[1:] {
		key := strings.TrimSpace(cell(row, fields.ID))
		if key == "" {
			return nil, nil, errs.Wrap(errs.ErrValidation, "parse CSV", fmt.Sprintf("row %d missing id", n+2), nil)
		}

		rec := record.NewRecord()
		for _, field := range fieldList {
			if field == fields.ID {
				continue
			}
			rec.Set(field, DecodeCell(cell(row, field), inferTypes))
		}
		rs.Set(key, rec)
	}

	return rs, fieldList, nil
}
