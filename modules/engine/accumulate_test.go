package engine_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fcatools/wdcontext/modules/engine"
	"github.com/fcatools/wdcontext/modules/wikidata"
)

func entity(id string, claims map[string][]wikidata.Claim) *wikidata.Entity {
	return &wikidata.Entity{ID: id, Claims: claims}
}

func TestAccumulatorDirection(t *testing.T) {
	accumulator := engine.NewAccumulator(testIndexes(), engine.Options{
		Colouring: engine.ColouringDirection,
	})

	accumulator.ProcessEntity(entity("Q1", map[string][]wikidata.Claim{
		"P17": {entityClaim("Q2")},
	}))

	context := accumulator.Context()

	wantIncidence := map[string]engine.AttributeSet{
		"Q1": engine.NewAttributeSet("P17"),
		"Q2": engine.NewAttributeSet("^P17"),
	}
	if !reflect.DeepEqual(context.Incidence, wantIncidence) {
		t.Errorf("incidence = %v, want %v", context.Incidence, wantIncidence)
	}
	if len(context.Objects) != 2 || !context.Objects["Q1"] || !context.Objects["Q2"] {
		t.Errorf("objects = %v, want Q1 and Q2", context.Objects)
	}
	if len(context.Attributes) != 2 || !context.Attributes["P17"] || !context.Attributes["^P17"] {
		t.Errorf("attributes = %v, want P17 and ^P17", context.Attributes)
	}
}

func TestAccumulatorRunOverDump(t *testing.T) {
	dump := "[\n" +
		`{"id":"Q1","claims":{"P17":[{"rank":"normal","mainsnak":{"snaktype":"value","datatype":"wikibase-item","datavalue":{"type":"wikibase-entityid","value":{"id":"Q2"}}}}]}},` + "\n" +
		"]\n"

	path := filepath.Join(t.TempDir(), "dump.json")
	if err := os.WriteFile(path, []byte(dump), 0644); err != nil {
		t.Fatal(err)
	}

	context, err := engine.NewAccumulator(testIndexes(), engine.Options{
		Colouring: engine.ColouringDirection,
	}).Run(path)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	wantObjects := map[string]bool{"Q1": true, "Q2": true}
	if !reflect.DeepEqual(context.Objects, wantObjects) {
		t.Errorf("objects = %v, want %v", context.Objects, wantObjects)
	}
	wantAttributes := map[string]bool{"P17": true, "^P17": true}
	if !reflect.DeepEqual(context.Attributes, wantAttributes) {
		t.Errorf("attributes = %v, want %v", context.Attributes, wantAttributes)
	}
	wantIncidence := map[string]engine.AttributeSet{
		"Q1": engine.NewAttributeSet("P17"),
		"Q2": engine.NewAttributeSet("^P17"),
	}
	if !reflect.DeepEqual(context.Incidence, wantIncidence) {
		t.Errorf("incidence = %v, want %v", context.Incidence, wantIncidence)
	}
}

func TestAccumulatorOrderIndependent(t *testing.T) {
	entities := []*wikidata.Entity{
		entity("Q1", map[string][]wikidata.Claim{"P17": {entityClaim("Q2")}}),
		entity("Q2", map[string][]wikidata.Claim{"P17": {entityClaim("Q1")}, "P18": {stringClaim("x")}}),
		entity("Q3", map[string][]wikidata.Claim{"P17": {entityClaim("Q2"), entityClaim("Q3")}}),
	}

	forward := engine.NewAccumulator(testIndexes(), engine.Options{Colouring: engine.ColouringDirection})
	for _, e := range entities {
		forward.ProcessEntity(e)
	}

	backward := engine.NewAccumulator(testIndexes(), engine.Options{Colouring: engine.ColouringDirection})
	for i := len(entities) - 1; i >= 0; i-- {
		backward.ProcessEntity(entities[i])
	}

	if !reflect.DeepEqual(forward.Context(), backward.Context()) {
		t.Errorf("processing order changed the context: %v != %v",
			forward.Context(), backward.Context())
	}
}

func TestAccumulatorPropertyAllowList(t *testing.T) {
	accumulator := engine.NewAccumulator(testIndexes(), engine.Options{
		Properties: []string{"P17"},
		Colouring:  engine.ColouringNone,
	})

	accumulator.ProcessEntity(entity("Q1", map[string][]wikidata.Claim{
		"P17": {entityClaim("Q2")},
		"P18": {stringClaim("ignored")},
	}))

	want := map[string]engine.AttributeSet{"Q1": engine.NewAttributeSet("P17")}
	if !reflect.DeepEqual(accumulator.Context().Incidence, want) {
		t.Errorf("incidence = %v, want %v", accumulator.Context().Incidence, want)
	}
}

func TestAccumulatorSkipsDeprecatedAndValueless(t *testing.T) {
	deprecated := entityClaim("Q2")
	deprecated.Rank = "deprecated"
	novalue := wikidata.Claim{MainSnak: wikidata.Snak{SnakType: wikidata.SnakNoValue}}

	accumulator := engine.NewAccumulator(testIndexes(), engine.Options{
		Colouring: engine.ColouringNone,
	})
	accumulator.ProcessEntity(entity("Q1", map[string][]wikidata.Claim{
		"P17": {deprecated, novalue},
	}))

	if len(accumulator.Context().Objects) != 0 {
		t.Errorf("context = %v, want empty", accumulator.Context().Incidence)
	}
}

func TestAccumulatorEntityRestriction(t *testing.T) {
	accumulator := engine.NewAccumulator(testIndexes(), engine.Options{
		Colouring:      engine.ColouringDirection,
		FilterEntities: set("Q1", "Q2", "P17"),
	})

	// Q9 is not in the restriction set: the whole entity is skipped.
	accumulator.ProcessEntity(entity("Q9", map[string][]wikidata.Claim{
		"P17": {entityClaim("Q1")},
	}))
	// the P17 -> Q3 claim points outside the set and is skipped too
	accumulator.ProcessEntity(entity("Q1", map[string][]wikidata.Claim{
		"P17": {entityClaim("Q2"), entityClaim("Q3")},
	}))

	want := map[string]engine.AttributeSet{
		"Q1": engine.NewAttributeSet("P17"),
		"Q2": engine.NewAttributeSet("^P17"),
	}
	if !reflect.DeepEqual(accumulator.Context().Incidence, want) {
		t.Errorf("incidence = %v, want %v", accumulator.Context().Incidence, want)
	}
}

func TestAccumulatorBackgroundFilter(t *testing.T) {
	indexes := testIndexes()
	indexes.Subclasses["Q7"] = set("Q5")

	accumulator := engine.NewAccumulator(indexes, engine.Options{
		Colouring:      engine.ColouringNone,
		FilterProperty: "P31",
		FilterValue:    "Q5",
	})

	// direct match on the filter value
	accumulator.ProcessEntity(entity("Q1", map[string][]wikidata.Claim{
		"P31": {entityClaim("Q5")},
	}))
	// match through the transitive subclass relation
	accumulator.ProcessEntity(entity("Q2", map[string][]wikidata.Claim{
		"P31": {entityClaim("Q7")},
	}))
	// no match: filtered out entirely
	accumulator.ProcessEntity(entity("Q3", map[string][]wikidata.Claim{
		"P31": {entityClaim("Q9")},
	}))

	incidence := accumulator.Context().Incidence
	if len(incidence) != 2 {
		t.Fatalf("incidence has %v objects, want 2: %v", len(incidence), incidence)
	}
	for _, object := range []string{"Q1", "Q2"} {
		if _, found := incidence[object]; !found {
			t.Errorf("object %v missing from context", object)
		}
	}
}
