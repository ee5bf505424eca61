package nist

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// formatHeader names the six output columns, one comment line each.
const formatHeader = `# energy (keV)
# f1 (e/atom)
# f2 (e/atom)
# wavelength (cm)
# delta
# beta
`

// Format serializes a table to text: the fixed six-line comment header
// followed by one whitespace-delimited row per entry, six numeric fields
// each. The table must have its optical columns computed (ErrNoOptical
// otherwise). Floats are written in shortest round-trippable form, so
// ParseFormatted recovers them exactly.
func Format(t Table) (string, error) {
	if !t.Optical {
		return "", fmt.Errorf("nist: format: %w", ErrNoOptical)
	}

	var b strings.Builder
	b.WriteString(formatHeader)
	for _, r := range t.Rows {
		fmt.Fprintf(&b, "%g\t%g\t%g\t%g\t%g\t%g\n",
			r.Energy, r.F1, r.F2, r.WavelengthCM, r.Delta, r.Beta)
	}

	return b.String(), nil
}

// ParseFormatted reads the text layout produced by Format back into a
// Table. Comment lines and blank lines are ignored; every data line must
// carry exactly six numeric fields. The result has Optical set.
func ParseFormatted(text string) (Table, error) {
	table := Table{Optical: true}

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) != 6 {
			return Table{}, fmt.Errorf("nist: line %d: want 6 fields, got %d: %w",
				line, len(fields), ErrBadTable)
		}

		var values [6]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Table{}, fmt.Errorf("nist: line %d: %q: %w", line, f, ErrBadTable)
			}
			values[i] = v
		}

		table.Rows = append(table.Rows, Row{
			Energy:       values[0],
			F1:           values[1],
			F2:           values[2],
			WavelengthCM: values[3],
			Wavelength:   values[3] * 1e7, // cm → nm
			Delta:        values[4],
			Beta:         values[5],
		})
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("nist: %w: %w", ErrBadTable, err)
	}

	if len(table.Rows) == 0 {
		return Table{}, fmt.Errorf("nist: no data rows found: %w", ErrBadTable)
	}
	if err := checkIncreasing(table.Rows); err != nil {
		return Table{}, err
	}

	return table, nil
}
