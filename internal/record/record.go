package record

// Record is an ordered mapping from field name to Scalar. Field order follows
// first insertion; setting an existing field replaces the value in place.
type Record struct {
	order  []string
	values map[string]Scalar
}

func NewRecord() *Record {
	return &Record{values: make(map[string]Scalar)}
}

func (r *Record) Set(field string, value Scalar) {
	if _, ok := r.values[field]; !ok {
		r.order = append(r.order, field)
	}
	r.values[field] = value
}

func (r *Record) Get(field string) (Scalar, bool) {
	v, ok := r.values[field]
	return v, ok
}

func (r *Record) Len() int { return len(r.order) }

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Equal reports whether both records hold the same field set with exactly
// equal values. Field order is not significant.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.values) != len(o.values) {
		return false
	}
	for field, v := range r.values {
		ov, ok := o.values[field]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// RecordSet is an ordered mapping from id key to Record. Iteration order is
// insertion order, which becomes CSV row order on encode. Setting an existing
// key replaces the record but keeps the key's original position, so duplicate
// CSV ids resolve last-wins without reordering rows.
type RecordSet struct {
	keys    []string
	records map[string]*Record
}

func NewRecordSet() *RecordSet {
	return &RecordSet{records: make(map[string]*Record)}
}

func (rs *RecordSet) Set(key string, rec *Record) {
	if _, ok := rs.records[key]; !ok {
		rs.keys = append(rs.keys, key)
	}
	rs.records[key] = rec
}

func (rs *RecordSet) Get(key string) (*Record, bool) {
	rec, ok := rs.records[key]
	return rec, ok
}

func (rs *RecordSet) Has(key string) bool {
	_, ok := rs.records[key]
	return ok
}

func (rs *RecordSet) Len() int { return len(rs.keys) }

// Keys returns the id keys in insertion order.
func (rs *RecordSet) Keys() []string {
	out := make([]string, len(rs.keys))
	copy(out, rs.keys)
	return out
}
