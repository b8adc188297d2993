package codec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tabular/internal/codec"
	"tabular/internal/errs"
	"tabular/internal/record"
)

func TestReadJSONPreservesKeyOrder(t *testing.T) {
	data := []byte(`{"zeta": {"x": 1}, "alpha": {"x": 2}, "mid": {"x": 3}}`)
	rs, err := codec.ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, rs.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONScalarTypes(t *testing.T) {
	data := []byte(`{"k1": {"s": "text", "i": 7, "f": 2.5, "e": 1e2, "b": true, "n": null}}`)
	rs, err := codec.ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON returned error: %v", err)
	}
	rec, ok := rs.Get("k1")
	if !ok {
		t.Fatal("k1 missing")
	}

	want := map[string]record.Scalar{
		"s": record.String("text"),
		"i": record.Int(7),
		"f": record.Float(2.5),
		"e": record.Float(100),
		"b": record.Bool(true),
		"n": record.Null(),
	}
	for field, wantValue := range want {
		got, ok := rec.Get(field)
		if !ok {
			t.Fatalf("field %q missing", field)
		}
		if !got.Equal(wantValue) {
			t.Errorf("field %q = %s %q, want %s %q", field, got.Kind(), got.Text(), wantValue.Kind(), wantValue.Text())
		}
	}
}

func TestReadJSONRejectsNonObjectRoot(t *testing.T) {
	for _, doc := range []string{`[1,2,3]`, `"text"`, `42`} {
		_, err := codec.ReadJSON([]byte(doc))
		if !errors.Is(err, errs.ErrSchema) {
			t.Errorf("ReadJSON(%s): expected schema error, got %v", doc, err)
		}
	}
}

func TestReadJSONRejectsNonObjectRecord(t *testing.T) {
	_, err := codec.ReadJSON([]byte(`{"k1": [1, 2]}`))
	if !errors.Is(err, errs.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	_, err = codec.ReadJSON([]byte(`{"k1": "flat"}`))
	if !errors.Is(err, errs.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestReadJSONRejectsNestedFieldValues(t *testing.T) {
	_, err := codec.ReadJSON([]byte(`{"k1": {"nested": {"a": 1}}}`))
	if !errors.Is(err, errs.ErrSchema) {
		t.Fatalf("expected schema error for nested object, got %v", err)
	}
	_, err = codec.ReadJSON([]byte(`{"k1": {"list": [1]}}`))
	if !errors.Is(err, errs.ErrSchema) {
		t.Fatalf("expected schema error for array value, got %v", err)
	}
}

func TestReadJSONRejectsMalformedInput(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"k1": {"a": 1}} trailing`} {
		_, err := codec.ReadJSON([]byte(doc))
		if !errors.Is(err, errs.ErrParse) {
			t.Errorf("ReadJSON(%q): expected parse error, got %v", doc, err)
		}
	}
}

func TestWriteJSONFormat(t *testing.T) {
	rec := record.NewRecord()
	rec.Set("name", record.String("Ada"))
	rec.Set("age", record.Int(36))
	rec.Set("score", record.Float(99.5))
	empty := record.NewRecord()

	rs := record.NewRecordSet()
	rs.Set("k1", rec)
	rs.Set("k2", empty)

	var buf strings.Builder
	if err := codec.WriteJSON(&buf, rs); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	want := `{
    "k1": {
        "name": "Ada",
        "age": 36,
        "score": 99.5
    },
    "k2": {}
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONEmptySet(t *testing.T) {
	var buf strings.Builder
	if err := codec.WriteJSON(&buf, record.NewRecordSet()); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if buf.String() != "{}\n" {
		t.Fatalf("got %q, want %q", buf.String(), "{}\n")
	}
}

func TestWriteJSONKeepsNonASCII(t *testing.T) {
	rec := record.NewRecord()
	rec.Set("city", record.String("København"))
	rs := record.NewRecordSet()
	rs.Set("kø1", rec)

	var buf strings.Builder
	if err := codec.WriteJSON(&buf, rs); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "København") || !strings.Contains(out, "kø1") {
		t.Fatalf("non-ASCII text was escaped:\n%s", out)
	}
}
