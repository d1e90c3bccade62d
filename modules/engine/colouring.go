package engine

import (
	"fmt"

	"github.com/fcatools/wdcontext/modules/index"
	"github.com/fcatools/wdcontext/modules/wikidata"
	"github.com/pkg/errors"
)

// Colouring selects how one claim is turned into attribute contributions.
type Colouring int

const (
	ColouringNone Colouring = iota
	ColouringDirection
	ColouringQualifiers
	ColouringClasses
)

func (c Colouring) String() string {
	switch c {
	case ColouringNone:
		return "none"
	case ColouringDirection:
		return "direction"
	case ColouringQualifiers:
		return "qualifiers"
	case ColouringClasses:
		return "classes"
	}
	return fmt.Sprintf("Colouring(%d)", int(c))
}

func ColouringFromString(s string) (Colouring, error) {
	switch s {
	case "none":
		return ColouringNone, nil
	case "direction":
		return ColouringDirection, nil
	case "qualifiers":
		return ColouringQualifiers, nil
	case "classes":
		return ColouringClasses, nil
	}
	return 0, errors.Errorf("unknown colouring %q - use one of: none, direction, qualifiers, classes", s)
}

// Colourer derives attribute contributions from single claims. It holds
// the label and instance tables the qualifiers and classes strategies
// need, plus the renderer for qualifier values.
type Colourer struct {
	strategy  Colouring
	labels    map[string]string
	instances map[string]index.IDSet
	renderer  *wikidata.Renderer
}

func NewColourer(strategy Colouring, indexes *index.Indexes) *Colourer {
	return &Colourer{
		strategy:  strategy,
		labels:    indexes.Labels,
		instances: indexes.Instances,
		renderer:  wikidata.NewRenderer(indexes.Labels),
	}
}

// Colour maps a single claim to per-object attribute label sets. The
// qualifiers and classes strategies fall back to direction (never to
// none) when their inputs are indistinguishable from an unqualified edge.
func (cl *Colourer) Colour(subject, prop string, claim *wikidata.Claim) (map[string]AttributeSet, error) {
	switch cl.strategy {
	case ColouringNone:
		return cl.colourNone(subject, prop, claim), nil
	case ColouringDirection:
		return cl.colourDirection(subject, prop, claim), nil
	case ColouringQualifiers:
		return cl.colourQualifiers(subject, prop, claim)
	case ColouringClasses:
		return cl.colourClasses(subject, prop, claim), nil
	}
	return nil, errors.Errorf("unknown colouring %v", cl.strategy)
}

// colourNone: the subject gets the bare property.
func (cl *Colourer) colourNone(subject, prop string, claim *wikidata.Claim) map[string]AttributeSet {
	return map[string]AttributeSet{subject: NewAttributeSet(prop)}
}

// colourDirection: as none, plus the referenced entity (if any) gets the
// reversed property, making the claim a bidirectional edge.
func (cl *Colourer) colourDirection(subject, prop string, claim *wikidata.Claim) map[string]AttributeSet {
	results := cl.colourNone(subject, prop, claim)

	if value := claim.EntityID(); value != "" {
		results[value] = NewAttributeSet("^" + prop)
	}

	return results
}

// colourQualifiers: one attribute per (qualifying property, qualifier
// value) pair. Qualifier attributes replace the direction edge, they do
// not augment it.
func (cl *Colourer) colourQualifiers(subject, prop string, claim *wikidata.Claim) (map[string]AttributeSet, error) {
	if !claim.HasQualifiers() {
		return cl.colourDirection(subject, prop, claim), nil
	}

	results := map[string]AttributeSet{subject: NewAttributeSet()}
	value := claim.EntityID()
	if value != "" {
		results[value] = NewAttributeSet()
	}

	for pid, qualifiers := range claim.Qualifiers {
		for i := range qualifiers {
			rendered, err := cl.renderer.Render(&qualifiers[i])
			if err != nil {
				return nil, err
			}

			results[subject].Add(fmt.Sprintf("%s@[%s:%s]", prop, pid, rendered))
			if value != "" {
				results[value].Add(fmt.Sprintf("^%s@[%s:%s]", prop, pid, rendered))
			}
		}
	}

	return results, nil
}

// colourClasses: one attribute pair per recorded direct class of the
// referenced entity. An entity instantiating k classes contributes k
// distinct attribute pairs for a single claim.
func (cl *Colourer) colourClasses(subject, prop string, claim *wikidata.Claim) map[string]AttributeSet {
	value := claim.EntityID()

	if value == "" || len(cl.instances[value]) == 0 {
		return cl.colourDirection(subject, prop, claim)
	}

	results := map[string]AttributeSet{
		subject: NewAttributeSet(),
		value:   NewAttributeSet(),
	}

	for qid := range cl.instances[value] {
		edge := fmt.Sprintf("%s@<%s>", prop, cl.renderer.Labelled(qid))
		results[subject].Add(edge)
		results[value].Add("^" + edge)
	}

	return results
}
