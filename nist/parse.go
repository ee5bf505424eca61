package nist

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/serebrin/xrayopt/phys"
)

const (
	// errorMarker flags a failed lookup: the service answers HTTP 200 with
	// an error page instead of a status code.
	errorMarker = "Error"

	// densityMarker introduces the line carrying atomic weight and nominal
	// density.
	densityMarker = "Nominal density"
)

// Validate checks a raw page for the service's error marker. The payload
// passes through unchanged; Validate never modifies or normalizes it.
func Validate(raw string) error {
	if strings.Contains(raw, errorMarker) {
		return fmt.Errorf("nist: check the formula and energy range: %w", ErrRemotePage)
	}

	return nil
}

// Parse extracts the scattering table from a raw HTML page.
//
// Every <tr> is scanned; rows without <td> cells are headers and are
// skipped. From each data row the first three cells plus the last cell are
// kept: energy keV, f1, f2, wavelength nm (the black-box column contract
// described in the package documentation). Cell text is stripped of markup
// and non-breaking-space artifacts before numeric parsing. Each data row
// contributes exactly one table row.
func Parse(raw string) (Table, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return Table{}, fmt.Errorf("nist: %w: %w", ErrBadTable, err)
	}

	var table Table
	for _, tr := range elementsByTag(doc, "tr") {
		cells := cellTexts(tr)
		if len(cells) == 0 {
			continue // header row
		}
		if len(cells) < 4 {
			return Table{}, fmt.Errorf("nist: data row has %d cells, want at least 4: %w",
				len(cells), ErrBadTable)
		}

		kept := append(cells[:3:3], cells[len(cells)-1])
		var values [4]float64
		for i, cell := range kept {
			// Some cells carry spacer artifacts inside the number.
			v, err := strconv.ParseFloat(strings.ReplaceAll(cell, " ", ""), 64)
			if err != nil {
				return Table{}, fmt.Errorf("nist: cell %q: %w", cell, ErrBadTable)
			}
			values[i] = v
		}

		table.Rows = append(table.Rows, Row{
			Energy:     values[0],
			F1:         values[1],
			F2:         values[2],
			Wavelength: values[3],
		})
	}

	if len(table.Rows) == 0 {
		return Table{}, fmt.Errorf("nist: no data rows found: %w", ErrBadTable)
	}
	if err := checkIncreasing(table.Rows); err != nil {
		return Table{}, err
	}

	return table, nil
}

// ExtractDensity scans the raw page for the nominal-density line and
// returns the material's atom density in atoms/cm³: the line's leading
// token is the atomic weight (g/mol) and its trailing token the density
// (g/cm³), combined as N_A × density / weight.
func ExtractDensity(raw string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, densityMarker) {
			continue
		}

		fields := strings.Fields(cleanCell(line))
		if len(fields) < 2 {
			return 0, fmt.Errorf("nist: density line %q: %w", strings.TrimSpace(line), ErrBadTable)
		}
		weight, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, fmt.Errorf("nist: density line %q: bad atomic weight: %w",
				strings.TrimSpace(line), ErrBadTable)
		}
		density, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("nist: density line %q: bad density: %w",
				strings.TrimSpace(line), ErrBadTable)
		}

		return phys.Avogadro * density / weight, nil
	}

	return 0, ErrNoDensity
}

// checkIncreasing enforces the table's strictly-increasing energy order.
func checkIncreasing(rows []Row) error {
	for i := 1; i < len(rows); i++ {
		if rows[i].Energy <= rows[i-1].Energy {
			return fmt.Errorf("nist: energies not strictly increasing at row %d (%g after %g): %w",
				i, rows[i].Energy, rows[i-1].Energy, ErrBadTable)
		}
	}

	return nil
}

// elementsByTag walks the parsed DOM depth-first and collects every node
// with the given tag name.
func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, elementsByTag(c, tag)...)
	}

	return out
}

// cellTexts returns the cleaned text of each <td> under a row node,
// skipping cells that are empty after cleanup.
func cellTexts(tr *html.Node) []string {
	var out []string
	for _, td := range elementsByTag(tr, "td") {
		if text := cleanCell(nodeText(td)); text != "" {
			out = append(out, text)
		}
	}

	return out
}

// nodeText concatenates all text-node descendants.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}

	return b.String()
}

// cleanCell strips the markup artifacts the service leaves in cell text:
// non-breaking spaces and surrounding whitespace.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")

	return strings.TrimSpace(s)
}
