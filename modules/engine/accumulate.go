package engine

import (
	"github.com/fcatools/wdcontext/modules/index"
	"github.com/fcatools/wdcontext/modules/wikidata"
)

// Options is the immutable per-run configuration of a context build.
type Options struct {
	// Properties is the allow-list; empty means every property qualifies.
	Properties []string
	Colouring  Colouring
	// FilterProperty/FilterValue restrict processing to entities carrying
	// a claim on FilterProperty whose value is FilterValue or a recorded
	// transitive subclass of it.
	FilterProperty string
	FilterValue    string
	// FilterEntities, when non-nil, restricts objects, attribute
	// properties and claim values to this set. Fail-closed.
	FilterEntities index.IDSet
}

// Accumulator drives the colourer across a dump and folds per-entity
// contributions into one Context.
type Accumulator struct {
	opts       Options
	properties index.IDSet
	indexes    *index.Indexes
	colourer   *Colourer
	context    *Context
	err        error
}

func NewAccumulator(indexes *index.Indexes, opts Options) *Accumulator {
	var properties index.IDSet
	if len(opts.Properties) > 0 {
		properties = make(index.IDSet, len(opts.Properties))
		for _, pid := range opts.Properties {
			properties.Add(pid)
		}
	}

	return &Accumulator{
		opts:       opts,
		properties: properties,
		indexes:    indexes,
		colourer:   NewColourer(opts.Colouring, indexes),
		context:    NewContext(),
	}
}

// Run performs the context pass over the dump and returns the final
// context. A render contract violation aborts the run.
func (a *Accumulator) Run(dumppath string) (*Context, error) {
	if err := wikidata.ProcessDump(dumppath, a.ProcessEntity); err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.context, nil
}

func (a *Accumulator) Context() *Context {
	return a.context
}

func (a *Accumulator) matches(pid string) bool {
	if a.properties != nil && !a.properties.Contains(pid) {
		return false
	}
	if a.opts.FilterEntities != nil && !a.opts.FilterEntities.Contains(pid) {
		return false
	}
	return true
}

// passesBackgroundFilter reports whether the entity carries a
// non-deprecated claim on the filter property whose value matches the
// filter value directly or through the transitive subclass relation.
func (a *Accumulator) passesBackgroundFilter(entity *wikidata.Entity) bool {
	claims, found := entity.Claims[a.opts.FilterProperty]
	if !found {
		return false
	}

	for i := range claims {
		claim := &claims[i]
		if !claim.IsNotDeprecated() {
			continue
		}
		value := claim.EntityID()
		if value == "" {
			continue
		}
		if value == a.opts.FilterValue {
			return true
		}
		if superclasses, found := a.indexes.Subclasses[value]; found && superclasses.Contains(a.opts.FilterValue) {
			return true
		}
	}

	return false
}

// ProcessEntity folds one entity's contribution into the context. Safe to
// call in any entity order: the incidence fold is a per-object set union.
func (a *Accumulator) ProcessEntity(entity *wikidata.Entity) {
	if a.err != nil {
		return
	}

	if !entity.HasClaims() {
		return
	}

	if a.opts.FilterEntities != nil && !a.opts.FilterEntities.Contains(entity.ID) {
		return
	}

	if a.opts.FilterValue != "" && !a.passesBackgroundFilter(entity) {
		return
	}

	for prop, claims := range entity.Claims {
		if !a.matches(prop) {
			continue
		}

		for i := range claims {
			claim := &claims[i]
			if !claim.IsNotDeprecated() || !claim.HasMeaningfulValue() {
				continue
			}

			if a.opts.FilterEntities != nil {
				if value := claim.EntityID(); value != "" && !a.opts.FilterEntities.Contains(value) {
					continue
				}
			}

			coloured, err := a.colourer.Colour(entity.ID, prop, claim)
			if err != nil {
				a.err = err
				return
			}

			for object, attributes := range coloured {
				a.context.AddIncidence(object, attributes)
			}
		}
	}
}
