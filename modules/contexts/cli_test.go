package contexts_test

import (
	"testing"

	"github.com/fcatools/wdcontext/modules/contexts"
)

func TestCommandWiring(t *testing.T) {
	if contexts.Command.RunE == nil {
		t.Fatal("context command has no run function")
	}
	for _, flag := range []string{
		"indexes",
		"property",
		"properties-in-class",
		"colouring",
		"item-filter-property",
		"item-filter-value",
		"entities-from-file",
	} {
		if contexts.Command.Flags().Lookup(flag) == nil {
			t.Errorf("context command is missing the --%v flag", flag)
		}
	}
}
