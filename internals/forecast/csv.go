package forecast

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var errMissingHeader = errors.New("header row missing")

// ParseBatsmen reads a batsman forecast file.
func ParseBatsmen(r io.Reader) (Table[BatsmanRow], error) {
	return parseTable(r, typeInfos[Batsman], func(name string, value float64, form string, extra map[string]string) BatsmanRow {
		return BatsmanRow{Batsman: name, ForecastedRuns: value, FormStatus: form, Extra: extra}
	})
}

// ParseBowlers reads a bowler forecast file.
func ParseBowlers(r io.Reader) (Table[BowlerRow], error) {
	return parseTable(r, typeInfos[Bowler], func(name string, value float64, form string, extra map[string]string) BowlerRow {
		return BowlerRow{Bowler: name, ForecastedWickets: value, FormStatus: form, Extra: extra}
	})
}

// WriteCSV writes the table with its original header and row order.
func WriteCSV[R Row](w io.Writer, t Table[R]) error {
	cw := csv.NewWriter(w)
	return cw.WriteAll(t.Records())
}

func readTable[R Row](path string, parse func(io.Reader) (Table[R], error)) (Table[R], error) {
	f, err := os.Open(path)
	if err != nil {
		return Table[R]{}, &DataNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := parse(f)
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			se.Path = path
		}
		return Table[R]{}, err
	}
	return t, nil
}

type rowBuilder[R Row] func(name string, value float64, form string, extra map[string]string) R

func parseTable[R Row](r io.Reader, s TypeInfo, build rowBuilder[R]) (Table[R], error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return Table[R]{}, &SchemaError{Line: 1, Err: errMissingHeader}
	}
	if err != nil {
		return Table[R]{}, csvError(err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range []string{s.NameColumn, s.ValueColumn, ColFormStatus} {
		if _, ok := index[col]; !ok {
			return Table[R]{}, &SchemaError{Column: col, Err: errMissingColumn}
		}
	}
	nameIdx, valueIdx, formIdx := index[s.NameColumn], index[s.ValueColumn], index[ColFormStatus]

	t := Table[R]{Type: s.Type, Columns: header, Rows: make([]R, 0)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table[R]{}, csvError(err)
		}
		line, _ := cr.FieldPos(0)

		name := rec[nameIdx]
		if strings.TrimSpace(name) == "" {
			return Table[R]{}, &SchemaError{Line: line, Column: s.NameColumn, Err: errEmptyPlayer}
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[valueIdx]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return Table[R]{}, &SchemaError{Line: line, Column: s.ValueColumn, Err: errNotNumeric}
		}

		var extra map[string]string
		for i, col := range header {
			if i == nameIdx || i == valueIdx || i == formIdx {
				continue
			}
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[col] = rec[i]
		}

		t.Rows = append(t.Rows, build(name, value, rec[formIdx], extra))
	}
	return t, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SchemaError{Line: pe.Line, Err: pe.Err}
	}
	return err
}
