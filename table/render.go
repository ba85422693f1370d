package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"pythoner/internal/common"
)

// Column separators.
const (
	CellSeparator   = " | "
	HeaderSeparator = "-+-"
)

// Print renders rows to standard output.
func Print(rows []Row) error {
	return Fprint(os.Stdout, rows)
}

// Fprint renders rows to w.
func Fprint(w io.Writer, rows []Row) error {
	text, err := Render(rows)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, text)

	return err
}

// Render returns rows as text: a vertical listing for one row, an aligned
// table otherwise.
func Render(rows []Row) (string, error) {
	if err := validate(rows); err != nil {
		return "", err
	}

	if common.IsMultiple(rows) {
		return renderTable(rows), nil
	}

	return renderVertical(rows[0]), nil
}

func renderTable(rows []Row) string {
	headers := rows[0].Fields

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, len(r.Values))
		for j, v := range r.Values {
			cells[i][j] = Format(v)
		}
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = width(h)
		for i := range cells {
			widths[j] = max(widths[j], width(cells[i][j]))
		}
	}

	var sb strings.Builder

	writeLine(&sb, headers, widths)

	dashes := make([]string, len(widths))
	for j, w := range widths {
		dashes[j] = strings.Repeat("-", w)
	}

	sb.WriteString(strings.Join(dashes, HeaderSeparator))
	sb.WriteByte('\n')

	for _, line := range cells {
		writeLine(&sb, line, widths)
	}

	return sb.String()
}

func writeLine(sb *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for j, c := range cells {
		padded[j] = fmt.Sprintf("%-*s", widths[j], c)
	}

	sb.WriteString(strings.Join(padded, CellSeparator))
	sb.WriteByte('\n')
}

func renderVertical(r Row) string {
	w := 0
	for _, f := range r.Fields {
		w = max(w, width(f))
	}

	var sb strings.Builder

	for i, f := range r.Fields {
		fmt.Fprintf(&sb, "%*s = %s\n", w, f, Format(r.Values[i]))
	}

	return sb.String()
}

// width counts characters, not bytes.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// Format renders a value the way record sources spell it: nil as None and
// booleans as True/False. Everything else goes through fmt.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}

		return "False"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
