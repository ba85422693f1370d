package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pythoner/internal/common"
	"pythoner/internal/match"
)

// ErrInvalidArgument is returned for empty or non-uniform input.
var ErrInvalidArgument = errors.New("invalid argument")

// Row is one record: field names paired with values, in declaration order.
type Row struct {
	Fields []string
	Values []any
}

// NewRow pairs fields with values positionally.
func NewRow(fields []string, values ...any) Row {
	return Row{
		Fields: append([]string(nil), fields...),
		Values: append([]any(nil), values...),
	}
}

// Get returns the value of field.
func (r Row) Get(field string) (any, bool) {
	i := slices.Index(r.Fields, field)
	if i < 0 || i >= len(r.Values) {
		return nil, false
	}

	return r.Values[i], true
}

// Set updates field in place or appends it at the end.
func (r *Row) Set(field string, value any) {
	if i := slices.Index(r.Fields, field); i >= 0 && i < len(r.Values) {
		r.Values[i] = value
		return
	}

	r.Fields = append(r.Fields, field)
	r.Values = append(r.Values, value)
}

// Map returns the row as an unordered map.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.Fields))
	for i, f := range r.Fields {
		if i < len(r.Values) {
			m[f] = r.Values[i]
		}
	}

	return m
}

// Filter transforms records before they become rows.
type Filter func(records []map[string]any) []map[string]any

// BuildRows turns records into rows whose fields follow headers.
// Every record, after filter, must hold exactly the header fields.
func BuildRows(headers []string, records []map[string]any, filter Filter) ([]Row, error) {
	if dup, ok := common.Duplicate(headers); ok {
		return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidArgument, dup)
	}

	if filter != nil {
		records = filter(records)
	}

	rows := make([]Row, 0, len(records))

	for i, rec := range records {
		values := make([]any, len(headers))

		for j, h := range headers {
			v, ok := rec[h]
			if !ok {
				return nil, missingField(i, h, rec)
			}

			values[j] = v
		}

		if len(rec) != len(headers) {
			return nil, fmt.Errorf("%w: record %d has unexpected fields %s",
				ErrInvalidArgument, i, strings.Join(extraFields(rec, headers), ", "))
		}

		rows = append(rows, Row{Fields: headers, Values: values})
	}

	return rows, nil
}

// Project returns a filter keeping only the given fields of each record.
// Records lacking a field are passed through without it.
func Project(fields ...string) Filter {
	return func(records []map[string]any) []map[string]any {
		out := make([]map[string]any, 0, len(records))

		for _, rec := range records {
			picked := make(map[string]any, len(fields))
			for _, f := range fields {
				if v, ok := rec[f]; ok {
					picked[f] = v
				}
			}

			out = append(out, picked)
		}

		return out
	}
}

func missingField(i int, field string, rec map[string]any) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	if guess, ok := match.Suggest(field, keys); ok {
		return fmt.Errorf("%w: record %d is missing field %q (did you mean %q?)", ErrInvalidArgument, i, field, guess)
	}

	return fmt.Errorf("%w: record %d is missing field %q", ErrInvalidArgument, i, field)
}

func extraFields(rec map[string]any, headers []string) []string {
	var extra []string

	for k := range rec {
		if !slices.Contains(headers, k) {
			extra = append(extra, k)
		}
	}

	slices.Sort(extra)

	return extra
}

// validate checks that rows is non-empty and uniform.
func validate(rows []Row) error {
	if common.IsEmpty(rows) {
		return fmt.Errorf("%w: no rows to render", ErrInvalidArgument)
	}

	head := rows[0].Fields
	if dup, ok := common.Duplicate(head); ok {
		return fmt.Errorf("%w: duplicate field %q", ErrInvalidArgument, dup)
	}

	for i, r := range rows {
		if len(r.Fields) != len(r.Values) {
			return fmt.Errorf("%w: row %d has %d fields and %d values",
				ErrInvalidArgument, i, len(r.Fields), len(r.Values))
		}

		if !slices.Equal(r.Fields, head) {
			return fmt.Errorf("%w: row %d fields [%s] differ from [%s]",
				ErrInvalidArgument, i, strings.Join(r.Fields, ", "), strings.Join(head, ", "))
		}
	}

	return nil
}
