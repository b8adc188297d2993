package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"tabular/internal/record"
	"tabular/internal/roundtrip"
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func renderFieldTable(fieldList []string) string {
	rows := make([][]string, 0, len(fieldList))
	for i, field := range fieldList {
		rows = append(rows, []string{strconv.Itoa(i + 1), field})
	}
	return renderTable([]string{"#", "Field"}, rows)
}

// renderDivergenceTable shows the first differing record side by side, one
// row per field, with typed values so string "5" and integer 5 are
// distinguishable.
func renderDivergenceTable(d *roundtrip.Divergence) string {
	seen := make(map[string]struct{})
	var order []string
	for _, rec := range []*record.Record{d.Original, d.Roundtrip} {
		if rec == nil {
			continue
		}
		for _, field := range rec.Fields() {
			if _, ok := seen[field]; ok {
				continue
			}
			seen[field] = struct{}{}
			order = append(order, field)
		}
	}

	rows := make([][]string, 0, len(order))
	for _, field := range order {
		rows = append(rows, []string{field, describeCell(d.Original, field), describeCell(d.Roundtrip, field)})
	}
	return renderTable([]string{"Field", "Original", "Round-trip"}, rows)
}

func describeCell(rec *record.Record, field string) string {
	if rec == nil {
		return "-"
	}
	value, ok := rec.Get(field)
	if !ok {
		return "(absent)"
	}
	if value.Kind() == record.KindString {
		return strconv.Quote(value.Text())
	}
	return value.Text() + " (" + value.Kind().String() + ")"
}
