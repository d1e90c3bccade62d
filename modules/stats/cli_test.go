package stats_test

import (
	"testing"

	"github.com/fcatools/wdcontext/modules/stats"
)

func TestCommandWiring(t *testing.T) {
	if stats.Command.RunE == nil {
		t.Fatal("stats command has no run function")
	}
	for _, flag := range []string{"properties-in-class", "entities-from-file"} {
		if stats.Command.Flags().Lookup(flag) == nil {
			t.Errorf("stats command is missing the --%v flag", flag)
		}
	}
}
