package engine_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/fcatools/wdcontext/modules/engine"
	"github.com/fcatools/wdcontext/modules/index"
	"github.com/fcatools/wdcontext/modules/wikidata"
)

func entityClaim(target string) wikidata.Claim {
	return wikidata.Claim{
		Rank: "normal",
		MainSnak: wikidata.Snak{
			SnakType: wikidata.SnakValue,
			Datatype: "wikibase-item",
			DataValue: wikidata.DataValue{
				Type:  "wikibase-entityid",
				Value: json.RawMessage(`{"id":"` + target + `"}`),
			},
		},
	}
}

func stringClaim(text string) wikidata.Claim {
	return wikidata.Claim{
		Rank: "normal",
		MainSnak: wikidata.Snak{
			SnakType: wikidata.SnakValue,
			Datatype: "string",
			DataValue: wikidata.DataValue{
				Type:  "string",
				Value: json.RawMessage(`"` + text + `"`),
			},
		},
	}
}

func stringQualifier(text string) wikidata.Snak {
	return wikidata.Snak{
		SnakType: wikidata.SnakValue,
		Datatype: "string",
		DataValue: wikidata.DataValue{
			Type:  "string",
			Value: json.RawMessage(`"` + text + `"`),
		},
	}
}

func testIndexes() *index.Indexes {
	indexes := index.NewIndexes()
	indexes.Labels["Q5"] = "human"
	indexes.Instances["Q2"] = set("Q5", "Q6")
	return indexes
}

func set(ids ...string) index.IDSet {
	result := make(index.IDSet, len(ids))
	for _, id := range ids {
		result.Add(id)
	}
	return result
}

func TestColouringFromString(t *testing.T) {
	for _, name := range []string{"none", "direction", "qualifiers", "classes"} {
		colouring, err := engine.ColouringFromString(name)
		if err != nil {
			t.Errorf("ColouringFromString(%q) error: %v", name, err)
		}
		if colouring.String() != name {
			t.Errorf("round trip %q -> %v", name, colouring)
		}
	}
	if _, err := engine.ColouringFromString("rainbow"); err == nil {
		t.Error("expected an error for an unknown colouring name")
	}
}

var colourTests = []struct {
	name     string
	strategy engine.Colouring
	claim    wikidata.Claim
	want     map[string]engine.AttributeSet
}{
	{
		name:     "none ignores the value",
		strategy: engine.ColouringNone,
		claim:    entityClaim("Q2"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
		},
	},
	{
		name:     "direction adds the reversed edge",
		strategy: engine.ColouringDirection,
		claim:    entityClaim("Q2"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
			"Q2": engine.NewAttributeSet("^P17"),
		},
	},
	{
		name:     "direction without an entity value",
		strategy: engine.ColouringDirection,
		claim:    stringClaim("plain"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
		},
	},
	{
		name:     "qualifiers without qualifiers falls back to direction",
		strategy: engine.ColouringQualifiers,
		claim:    entityClaim("Q2"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
			"Q2": engine.NewAttributeSet("^P17"),
		},
	},
	{
		name:     "qualifiers replace the plain edge",
		strategy: engine.ColouringQualifiers,
		claim: func() wikidata.Claim {
			claim := entityClaim("Q2")
			claim.Qualifiers = map[string][]wikidata.Snak{
				"P580": {stringQualifier("1999")},
			}
			return claim
		}(),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17@[P580:1999]"),
			"Q2": engine.NewAttributeSet("^P17@[P580:1999]"),
		},
	},
	{
		name:     "qualifiers on a claim without an entity value",
		strategy: engine.ColouringQualifiers,
		claim: func() wikidata.Claim {
			claim := stringClaim("plain")
			claim.Qualifiers = map[string][]wikidata.Snak{
				"P580": {stringQualifier("1999"), stringQualifier("2001")},
			}
			return claim
		}(),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17@[P580:1999]", "P17@[P580:2001]"),
		},
	},
	{
		name:     "classes without a value falls back to direction",
		strategy: engine.ColouringClasses,
		claim:    stringClaim("plain"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
		},
	},
	{
		name:     "classes without recorded classes falls back to direction",
		strategy: engine.ColouringClasses,
		claim:    entityClaim("Q9"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17"),
			"Q9": engine.NewAttributeSet("^P17"),
		},
	},
	{
		name:     "classes contribute one pair per class",
		strategy: engine.ColouringClasses,
		claim:    entityClaim("Q2"),
		want: map[string]engine.AttributeSet{
			"Q1": engine.NewAttributeSet("P17@<human (Q5)>", "P17@<Q6>"),
			"Q2": engine.NewAttributeSet("^P17@<human (Q5)>", "^P17@<Q6>"),
		},
	},
}

func TestColour(t *testing.T) {
	for _, tt := range colourTests {
		t.Run(tt.name, func(t *testing.T) {
			colourer := engine.NewColourer(tt.strategy, testIndexes())
			got, err := colourer.Colour("Q1", "P17", &tt.claim)
			if err != nil {
				t.Fatalf("Colour() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Colour() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColourRejectsBadQualifierSnak(t *testing.T) {
	claim := entityClaim("Q2")
	claim.Qualifiers = map[string][]wikidata.Snak{
		"P580": {{SnakType: "gibberish"}},
	}

	colourer := engine.NewColourer(engine.ColouringQualifiers, testIndexes())
	if _, err := colourer.Colour("Q1", "P17", &claim); err == nil {
		t.Error("expected an error for an unexpected qualifier snak type")
	}
}
