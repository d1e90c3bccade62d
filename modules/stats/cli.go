package stats

import (
	"fmt"
	"sort"

	"github.com/fcatools/wdcontext/modules/cli"
	"github.com/fcatools/wdcontext/modules/index"
	"github.com/fcatools/wdcontext/modules/util"
	"github.com/fcatools/wdcontext/modules/wikidata"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	Command = &cobra.Command{
		Use:   "stats [dump file]",
		Short: "Generates statistics from a Wikidata dump",
		Args:  cobra.ExactArgs(1),
	}

	qids    = Command.Flags().StringArray("properties-in-class", nil, "count formal properties defined by class Qid")
	eidfile = Command.Flags().String("entities-from-file", "", "restrict entities to those listed in the file")
)

func init() {
	Command.RunE = Execute
	cli.Root.AddCommand(Command)
}

// classStat counts items, properties and statements attributed to one
// class of formal properties ("__all__" covers the entire dump).
type classStat struct {
	properties index.IDSet
	items      index.IDSet
	statements int
}

func newClassStat() *classStat {
	return &classStat{
		properties: make(index.IDSet),
		items:      make(index.IDSet),
	}
}

func Execute(cmd *cobra.Command, args []string) error {
	dumppath := args[0]

	var entities index.IDSet
	if *eidfile != "" {
		lines, err := util.ReadLines(*eidfile)
		if err != nil {
			return errors.Wrapf(err, "problem reading entity file %v", *eidfile)
		}
		entities = make(index.IDSet, len(lines))
		for _, eid := range lines {
			entities.Add(eid)
		}
	}

	stats := map[string]*classStat{
		"__all__": newClassStat(),
	}
	props := make(map[string]index.IDSet)

	for _, qid := range *qids {
		resolved, err := wikidata.CachedDirectInstancesInClass(qid, *cli.Language)
		if err != nil {
			return err
		}

		stat := newClassStat()
		for pid := range resolved {
			stat.properties.Add(pid)
			if props[pid] == nil {
				props[pid] = make(index.IDSet)
			}
			props[pid].Add(qid)
		}
		stats[qid] = stat
	}

	err := wikidata.ProcessDump(dumppath, func(entity *wikidata.Entity) {
		eid := entity.ID

		if entities != nil && !entities.Contains(eid) {
			return
		}

		for prop, claims := range entity.Claims {
			if entities != nil && !entities.Contains(prop) {
				continue
			}

			if len(props) > 0 {
				if props[prop] == nil {
					continue
				}
				for qid := range props[prop] {
					stats[qid].items.Add(eid)
				}
			}

			stats["__all__"].items.Add(eid)
			stats["__all__"].properties.Add(prop)

			for i := range claims {
				claim := &claims[i]
				if !claim.IsNotDeprecated() || !claim.HasMeaningfulValue() {
					continue
				}

				value := claim.EntityID()
				if value != "" {
					if entities != nil && !entities.Contains(value) {
						continue
					}
					stats["__all__"].items.Add(value)
				}
				stats["__all__"].statements++

				for qid := range props[prop] {
					if value != "" {
						stats[qid].items.Add(value)
					}
					stats[qid].statements++
				}
			}
		}
	})
	if err != nil {
		return err
	}

	classes := make([]string, 0, len(stats))
	for qid := range stats {
		classes = append(classes, qid)
	}
	sort.Strings(classes)

	for _, qid := range classes {
		stat := stats[qid]
		fmt.Printf("class %v: %v items, %v properties, %v statements\n",
			qid, len(stat.items), len(stat.properties), stat.statements)
	}

	return nil
}
