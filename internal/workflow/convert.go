package workflow

import (
	"tabular/internal/codec"
	"tabular/internal/fields"
	"tabular/internal/roundtrip"
)

// ConvertResult summarizes a completed file conversion.
type ConvertResult struct {
	Fields     []string
	Rows       int
	OutputPath string
}

// JSONToCSV reads a dict-of-records JSON file, infers the field list, and
// writes the CSV rendition to outputPath.
func (r *Runner) JSONToCSV(inputPath, outputPath string, force bool) (ConvertResult, error) {
	if err := r.checkOutput(outputPath, force); err != nil {
		return ConvertResult{}, err
	}
	data, err := r.readInput(inputPath)
	if err != nil {
		return ConvertResult{}, err
	}

	rs, err := codec.ReadJSON(data)
	if err != nil {
		return ConvertResult{}, err
	}
	fieldList, err := fields.FromRecords(rs)
	if err != nil {
		return ConvertResult{}, err
	}
	csvText, err := codec.EncodeCSV(rs, fieldList)
	if err != nil {
		return ConvertResult{}, err
	}

	if err := r.writeOutput(outputPath, []byte(csvText)); err != nil {
		return ConvertResult{}, err
	}

	r.logger.Info("wrote CSV", "output", outputPath, "rows", rs.Len(), "columns", len(fieldList))
	return ConvertResult{Fields: fieldList, Rows: rs.Len(), OutputPath: outputPath}, nil
}

// CSVToJSON reads a CSV file, re-derives the field list from its header, and
// writes the pretty-printed JSON rendition to outputPath. Scalar type
// inference applies per cell when inferTypes is set.
func (r *Runner) CSVToJSON(inputPath, outputPath string, force, inferTypes bool) (ConvertResult, error) {
	if err := r.checkOutput(outputPath, force); err != nil {
		return ConvertResult{}, err
	}
	data, err := r.readInput(inputPath)
	if err != nil {
		return ConvertResult{}, err
	}

	rs, fieldList, err := codec.DecodeCSV(string(data), inferTypes)
	if err != nil {
		return ConvertResult{}, err
	}

	if err := r.writeOutput(outputPath, codec.AppendJSON(nil, rs)); err != nil {
		return ConvertResult{}, err
	}

	r.logger.Info("wrote JSON", "output", outputPath, "rows", rs.Len(), "infer_types", inferTypes)
	return ConvertResult{Fields: fieldList, Rows: rs.Len(), OutputPath: outputPath}, nil
}

// VerifyFile runs the in-memory round-trip check over a JSON input file.
func (r *Runner) VerifyFile(inputPath string, inferTypes bool) (roundtrip.Result, error) {
	data, err := r.readInput(inputPath)
	if err != nil {
		return roundtrip.Result{}, err
	}

	rs, err := codec.ReadJSON(data)
	if err != nil {
		return roundtrip.Result{}, err
	}

	result, err := roundtrip.Verify(rs, inferTypes)
	if err != nil {
		return roundtrip.Result{}, err
	}
	r.logger.Info("verified round-trip", "input", inputPath, "pass", result.Pass, "infer_types", inferTypes)
	return result, nil
}
