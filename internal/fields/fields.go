// Package fields derives the canonical ordered field list for a RecordSet or
// a CSV header row. The reserved id field always sits at position 0 and is
// never stored inside a record's own field map.
package fields

import (
	"fmt"
	"sort"

	"tabular/internal/errs"
	"tabular/internal/record"
)

// ID is the reserved key field. It lives in the RecordSet key, not in the
// record values, and is always the first CSV column.
const ID = "id"

// FromRecords collects the union of field names across every record, sorts
// them in byte order, and prepends the id field. JSON objects have no
// inherent column order, so the sorted order keeps the CSV deterministic and
// diff-friendly. A stray id field inside a record is ignored.
func FromRecords(rs *record.RecordSet) ([]string, error) {
	seen := make(map[string]struct{})
	for _, key := range rs.Keys() {
		rec, ok := rs.Get(key)
		if !ok || rec == nil {
			return nil, errs.Wrap(errs.ErrSchema, "infer fields", fmt.Sprintf("record under key %q is not an object", key), nil)
		}
		for _, field := range rec.Fields() {
			if field == ID {
				continue
			}
			seen[field] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for field := range seen {
		names = append(names, field)
	}
	sort.Strings(names)

	return append([]string{ID}, names...), nil
}

// FromHeader derives the field list from a CSV header row. Header order is
// intentional and is preserved; only the id column moves to the front. The
// header must be non-empty and contain id exactly once.
func FromHeader(header []string) ([]string, error) {
	if len(header) == 0 {
		return nil, errs.Wrap(errs.ErrSchema, "read header", "CSV has no header columns", nil)
	}

	rest := make([]string, 0, len(header))
	idCount := 0
	for _, name := range header {
		if name == ID {
			idCount++
			continue
		}
		rest = append(rest, name)
	}
	switch {
	case idCount == 0:
		return nil, errs.Wrap(errs.ErrSchema, "read header", `CSV must have an "id" header column`, nil)
	case idCount > 1:
		return nil, errs.Wrap(errs.ErrSchema, "read header", `CSV header lists "id" more than once`, nil)
	}

	return append([]string{ID}, rest...), nil
}
