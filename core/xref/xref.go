// core/xref/xref.go
package xref

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ProteinID is a tagged external protein identifier of the form
// SOURCE:ACCESSION, e.g. "UNIPROT:P12345".
type ProteinID struct {
	Source    string
	Accession string
}

func (p ProteinID) String() string { return p.Source + ":" + p.Accession }

// ParseProteinID splits a tagged identifier on the first ':'.
func ParseProteinID(s string) (ProteinID, error) {
	i := strings.IndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return ProteinID{}, fmt.Errorf("bad protein id %q: want SOURCE:ACCESSION", s)
	}
	return ProteinID{Source: s[:i], Accession: s[i+1:]}, nil
}

// Annotations is one reaction's cross-reference block: key → accession list.
type Annotations map[string][]string

// Store is a read-only reaction → cross-reference lookup, loaded once from a
// tabular dump of the annotated network store.
type Store struct {
	nodes map[string]Annotations
}

// LoadStore reads a dump with one cross-reference list per line:
//
//	REACTION-ID <TAB> KEY <TAB> id;id;id
//
// Blank lines and '#' comments are skipped. Repeated (reaction, key) rows
// append; the store owns no interpretation of the keys.
func LoadStore(path string) (*Store, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	nodes := make(map[string]Annotations)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		rxn, key := f[0], f[1]
		if rxn == "" || key == "" {
			return nil, fmt.Errorf("%s:%d empty reaction or key", path, ln)
		}
		ann, ok := nodes[rxn]
		if !ok {
			ann = make(Annotations)
			nodes[rxn] = ann
		}
		for _, id := range strings.Split(f[2], ";") {
			if id = strings.TrimSpace(id); id != "" {
				ann[key] = append(ann[key], id)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Store{nodes: nodes}, nil
}

// Lookup returns the cross-reference block annotated on rxn, if any.
func (s *Store) Lookup(rxn string) (Annotations, bool) {
	ann, ok := s.nodes[rxn]
	return ann, ok
}

// Len returns the number of annotated reactions.
func (s *Store) Len() int { return len(s.nodes) }
