// Package codec converts between the in-memory RecordSet model and its two
// wire forms: the dict-of-records JSON document and the comma CSV table.
//
// JSON reading walks the goccy token stream so object key order survives into
// RecordSet iteration order; JSON writing is a small pretty printer because
// the output must list keys in that same order. CSV encoding and decoding sit
// on encoding/csv with the header row as the schema authority, and DecodeCell
// holds the optional scalar type inference used when reading cells back.
//
// Everything here is a pure transformation; file handling lives in the
// workflow package.
package codec
