// internal/mapper/mapper.go
package mapper

import (
	"sort"

	"github.com/sirupsen/logrus"
	"rxnblast-core/xref"
)

// Cross-reference keys recognized as catalyzing-protein annotations.
// The reduced-70 reference archive tags its namespaces with a _70 suffix;
// the source tag on the resulting ProteinID drops it.
var protKeys = []struct{ key, source string }{
	{"UNIPROT_70", "UNIPROT"},
	{"PID_70", "PID"},
}

// Mapper derives the set of protein identifiers annotated as catalyzing a
// reaction, via cross-reference lookup in the network store.
type Mapper struct {
	store *xref.Store
	log   *logrus.Logger
}

func New(store *xref.Store, log *logrus.Logger) *Mapper {
	return &Mapper{store: store, log: log}
}

// Map returns the duplicate-free ProteinIDs linked to rxn, sorted for
// reproducible downstream output. A reaction without an annotation block
// maps to the empty set; that is not an error.
func (m *Mapper) Map(rxn string) []xref.ProteinID {
	m.log.Infof("Extract protein IDs linked to reaction %s", rxn)

	ann, ok := m.store.Lookup(rxn)
	if !ok {
		m.log.Infof("0 protein IDs linked to reaction %s", rxn)
		return nil
	}

	seen := make(map[xref.ProteinID]struct{})
	var ids []xref.ProteinID
	for _, pk := range protKeys {
		for _, acc := range ann[pk.key] {
			id := xref.ProteinID{Source: pk.source, Accession: acc}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	m.log.Infof("%d protein IDs linked to reaction %s", len(ids), rxn)
	return ids
}
