package tabular

import (
	"strconv"
	"strings"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// missingMarkers are the cell texts read as null.
var missingMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether cell text denotes a missing value.
func IsMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return false, false
}

// parseFloat rejects the Go-only forms strconv accepts (hex floats,
// digit separators) so inference matches ordinary decimal notation.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_pP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// InferColumn builds a typed column from raw cell texts.
func InferColumn(name string, cells []string) *csvkit.Column {
	kind := inferKind(cells)
	col := &csvkit.Column{Name: name, Kind: kind, Values: make([]csvkit.Value, len(cells))}

	for i, cell := range cells {
		if IsMissing(cell) {
			col.Values[i] = csvkit.Null()
			continue
		}
		switch kind {
		case csvkit.KindInt:
			n, _ := strconv.ParseInt(cell, 10, 64)
			col.Values[i] = csvkit.IntValue(n)
		case csvkit.KindFloat:
			f, _ := parseFloat(cell)
			col.Values[i] = csvkit.FloatValue(f)
		case csvkit.KindBool:
			b, _ := parseBool(cell)
			col.Values[i] = csvkit.BoolValue(b)
		default:
			col.Values[i] = csvkit.StringValue(cell)
		}
	}
	return col
}

func inferKind(cells []string) csvkit.Kind {
	isInt, isFloat, isBool := true, true, true
	present := 0

	for _, cell := range cells {
		if IsMissing(cell) {
			continue
		}
		present++
		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat && !isInt {
			if _, ok := parseFloat(cell); !ok {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := parseBool(cell); !ok {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return csvkit.KindString
		}
	}

	switch {
	case present == 0:
		return csvkit.KindNull
	case isInt:
		return csvkit.KindInt
	case isFloat:
		return csvkit.KindFloat
	case isBool:
		return csvkit.KindBool
	default:
		return csvkit.KindString
	}
}
