package engine_test

import (
	"reflect"
	"testing"

	"github.com/fcatools/wdcontext/modules/engine"
)

func TestAddIncidenceUnions(t *testing.T) {
	context := engine.NewContext()

	context.AddIncidence("Q1", engine.NewAttributeSet("P17"))
	context.AddIncidence("Q1", engine.NewAttributeSet("P31"))
	context.AddIncidence("Q2", engine.NewAttributeSet("^P17"))

	want := map[string]engine.AttributeSet{
		"Q1": engine.NewAttributeSet("P17", "P31"),
		"Q2": engine.NewAttributeSet("^P17"),
	}
	if !reflect.DeepEqual(context.Incidence, want) {
		t.Errorf("incidence = %v, want %v", context.Incidence, want)
	}

	for _, object := range []string{"Q1", "Q2"} {
		if !context.Objects[object] {
			t.Errorf("object %v not recorded", object)
		}
	}
	for _, attribute := range []string{"P17", "P31", "^P17"} {
		if !context.Attributes[attribute] {
			t.Errorf("attribute %v not recorded", attribute)
		}
	}
}

func TestAddIncidenceCopiesContribution(t *testing.T) {
	context := engine.NewContext()
	contribution := engine.NewAttributeSet("P17")

	context.AddIncidence("Q1", contribution)
	contribution.Add("P31")

	if context.Incidence["Q1"].Contains("P31") {
		t.Error("context aliases the caller's attribute set")
	}
}

func TestAddBackgroundIntersects(t *testing.T) {
	context := engine.NewContext()

	context.AddBackground("Q1", engine.NewAttributeSet("a", "b", "c"))
	context.AddBackground("Q1", engine.NewAttributeSet("b", "c", "d"))
	context.AddBackground("Q2", engine.NewAttributeSet("x"))

	want := map[string]engine.AttributeSet{
		"Q1": engine.NewAttributeSet("b", "c"),
		"Q2": engine.NewAttributeSet("x"),
	}
	if !reflect.DeepEqual(context.Background, want) {
		t.Errorf("background = %v, want %v", context.Background, want)
	}
}
