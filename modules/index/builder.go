package index

import (
	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/fcatools/wdcontext/modules/wikidata"
)

// Build streams the dump once, extracting labels in the given language and
// the direct instance-of and subclass-of relations, then closes the
// subclass relation transitively. This is the expensive amortizable step:
// the result is saved once and reused across many context runs.
func Build(dumppath, language string) (*Indexes, error) {
	indexes := NewIndexes()
	direct := make(map[string]IDSet)

	err := wikidata.ProcessDump(dumppath, func(entity *wikidata.Entity) {
		if label, found := entity.Label(language); found {
			indexes.Labels[entity.ID] = label
		}

		for _, claim := range entity.Claims[wikidata.PropertySubclassOf] {
			if !claim.IsNotDeprecated() || !claim.HasMeaningfulValue() {
				continue
			}
			if superclass := claim.EntityID(); superclass != "" {
				if direct[entity.ID] == nil {
					direct[entity.ID] = make(IDSet)
				}
				direct[entity.ID].Add(superclass)
			}
		}

		for _, claim := range entity.Claims[wikidata.PropertyInstanceOf] {
			if !claim.IsNotDeprecated() || !claim.HasMeaningfulValue() {
				continue
			}
			if class := claim.EntityID(); class != "" {
				if indexes.Instances[entity.ID] == nil {
					indexes.Instances[entity.ID] = make(IDSet)
				}
				indexes.Instances[entity.ID].Add(class)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	ui.Info().Msgf("Computing transitive closure over %v subclass relations", len(direct))
	indexes.Subclasses = TransitiveClosure(direct)

	return indexes, nil
}
