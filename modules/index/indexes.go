package index

// IDSet is a set of entity identifiers.
type IDSet map[string]bool

func (s IDSet) Add(id string) {
	s[id] = true
}

func (s IDSet) Contains(id string) bool {
	return s[id]
}

func (s IDSet) Union(other IDSet) {
	for id := range other {
		s[id] = true
	}
}

func (s IDSet) Copy() IDSet {
	result := make(IDSet, len(s))
	for id := range s {
		result[id] = true
	}
	return result
}

// Indexes are the compact per-run tables extracted from a dump: entity
// labels in one language, direct instance-of targets, and the transitive
// closure of the subclass-of relation. Built once, read-only afterwards.
type Indexes struct {
	Labels     map[string]string
	Instances  map[string]IDSet
	Subclasses map[string]IDSet
}

func NewIndexes() *Indexes {
	return &Indexes{
		Labels:     make(map[string]string),
		Instances:  make(map[string]IDSet),
		Subclasses: make(map[string]IDSet),
	}
}

// TransitiveClosure extends relation to include all indirect successors.
// Naive all-pairs relaxation: each pass unions in the successors of each
// item's successors, one hop at a time, until a full pass adds nothing.
// Sets only ever grow, so the fixed point terminates after at most
// longest-chain-length passes. Items without direct successors have no
// entry, which means no successors at all.
func TransitiveClosure(relation map[string]IDSet) map[string]IDSet {
	changed := true
	for changed {
		changed = false
		step := make(map[string]IDSet, len(relation))

		for item, successors := range relation {
			step[item] = successors.Copy()
			for successor := range successors {
				if further, found := relation[successor]; found {
					step[item].Union(further)
				}
			}

			if len(step[item]) > len(successors) {
				changed = true
			}
		}

		if changed {
			relation = step
		}
	}

	return relation
}
