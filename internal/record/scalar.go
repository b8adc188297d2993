package record

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind discriminates the variants a Scalar can hold.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Scalar is a tagged variant holding one cell value: string, integer, float,
// boolean, or null. The zero value is the empty string.
type Scalar struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
}

func String(s string) Scalar { return Scalar{kind: KindString, str: s} }
func Int(i int64) Scalar     { return Scalar{kind: KindInt, i: i} }
func Float(f float64) Scalar { return Scalar{kind: KindFloat, f: f} }
func Bool(b bool) Scalar     { return Scalar{kind: KindBool, b: b} }
func Null() Scalar           { return Scalar{kind: KindNull} }

func (s Scalar) Kind() Kind { return s.kind }

// Equal reports exact equality: both kind and value must match. An integer 5
// is never equal to the string "5" or the float 5.0.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindString:
		return s.str == o.str
	case KindInt:
		return s.i == o.i
	case KindFloat:
		return s.f == o.f
	case KindBool:
		return s.b == o.b
	default:
		return true
	}
}

// Text returns the CSV cell form of the scalar. The forms are the exact
// inverse of the DecodeCell probes: bare digits re-parse as int, floats always
// carry a decimal point or exponent, booleans round-trip through the
// case-insensitive true/false probe. Null encodes as the empty cell.
func (s Scalar) Text() string {
	switch s.kind {
	case KindString:
		return s.str
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindFloat:
		return formatFloat(s.f)
	case KindBool:
		if s.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// AppendJSON appends the JSON literal form of the scalar to dst.
func (s Scalar) AppendJSON(dst []byte) []byte {
	switch s.kind {
	case KindString:
		return appendJSONString(dst, s.str)
	case KindInt:
		return strconv.AppendInt(dst, s.i, 10)
	case KindFloat:
		return append(dst, formatFloat(s.f)...)
	case KindBool:
		return strconv.AppendBool(dst, s.b)
	default:
		return append(dst, "null"...)
	}
}

// formatFloat renders the shortest representation that still re-parses as a
// float: a decimal point is appended when the shortest form looks like an
// integer (100.0 must not collapse to "100").
func formatFloat(f float64) string {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(text, ".eE") {
		return text
	}
	return text + ".0"
}

// appendJSONString escapes per RFC 8259 without HTML escaping; non-ASCII runes
// pass through untouched so UTF-8 payloads stay readable in the output.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0')
				const hex = "0123456789abcdef"
				dst = append(dst, hex[r>>4], hex[r&0xf])
				continue
			}
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}
