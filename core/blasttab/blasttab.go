// core/blasttab/blasttab.go
package blasttab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns is the tabular (outfmt 6) column set requested from the
// alignment tool, in order.
var Columns = []string{"sseqid", "evalue", "bitscore", "pident", "length"}

// OutFormat returns the value passed to the tool's -outfmt flag.
func OutFormat() string { return "6 " + strings.Join(Columns, " ") }

// Match is one tabular alignment row. The text fields are kept verbatim so
// rows can be re-emitted byte-for-byte as the tool printed them.
type Match struct {
	SubjectID   string
	EValue      float64
	BitScore    float64
	PctIdentity float64
	Length      int

	raw []string
}

// Row returns the five columns in Columns order. Parsed matches reproduce
// the tool's exact text; constructed matches are formatted from the fields.
func (m Match) Row() []string {
	if len(m.raw) == len(Columns) {
		return m.raw
	}
	return []string{
		m.SubjectID,
		strconv.FormatFloat(m.EValue, 'g', -1, 64),
		strconv.FormatFloat(m.BitScore, 'g', -1, 64),
		strconv.FormatFloat(m.PctIdentity, 'g', -1, 64),
		strconv.Itoa(m.Length),
	}
}

// Parse reads zero or more tabular rows from r. Empty input means the tool
// reported no match and yields (nil, nil).
func Parse(r io.Reader) ([]Match, error) {
	sc := bufio.NewScanner(r)
	var out []Match
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		m, err := parseRow(line)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("blast tabular scan: %w", err)
	}
	return out, nil
}

func parseRow(line string) (Match, error) {
	f := strings.Split(line, "\t")
	if len(f) != len(Columns) {
		return Match{}, fmt.Errorf("blast tabular row: want %d columns, got %d in %q", len(Columns), len(f), line)
	}
	ev, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Match{}, fmt.Errorf("blast tabular row: bad evalue %q: %w", f[1], err)
	}
	bs, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return Match{}, fmt.Errorf("blast tabular row: bad bitscore %q: %w", f[2], err)
	}
	pid, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return Match{}, fmt.Errorf("blast tabular row: bad pident %q: %w", f[3], err)
	}
	ln, err := strconv.Atoi(f[4])
	if err != nil {
		return Match{}, fmt.Errorf("blast tabular row: bad length %q: %w", f[4], err)
	}
	return Match{
		SubjectID:   f[0],
		EValue:      ev,
		BitScore:    bs,
		PctIdentity: pid,
		Length:      ln,
		raw:         f,
	}, nil
}
