package contexts

import (
	"os"

	"github.com/fcatools/wdcontext/modules/cli"
	"github.com/fcatools/wdcontext/modules/engine"
	"github.com/fcatools/wdcontext/modules/index"
	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/fcatools/wdcontext/modules/util"
	"github.com/fcatools/wdcontext/modules/wikidata"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	Command = &cobra.Command{
		Use:   "context [dump file] [output file]",
		Short: "Generates a formal context (in Burmeister format) from a Wikidata dump",
		Args:  cobra.ExactArgs(2),
	}

	indexpath      = Command.Flags().String("indexes", "", "path to helper indexes file (required)")
	properties     = Command.Flags().StringArray("property", nil, "include property Pid in the context")
	qids           = Command.Flags().StringArray("properties-in-class", nil, "add direct instances of class Qid to the context properties")
	colouringname  = Command.Flags().String("colouring", "none", "colouring type (none, direction, qualifiers, classes)")
	filterproperty = Command.Flags().String("item-filter-property", "", "use property Pid as background knowledge")
	filtervalue    = Command.Flags().String("item-filter-value", "", "use value Value as background knowledge")
	eidfile        = Command.Flags().String("entities-from-file", "", "restrict entities to those listed in the file")
)

func init() {
	Command.RunE = Execute
	Command.MarkFlagRequired("indexes")
	cli.Root.AddCommand(Command)
}

func Execute(cmd *cobra.Command, args []string) error {
	dumppath, outpath := args[0], args[1]

	colouring, err := engine.ColouringFromString(*colouringname)
	if err != nil {
		return err
	}

	indexes, err := index.Load(*indexpath)
	if err != nil {
		return err
	}

	opts := engine.Options{
		Properties:     *properties,
		Colouring:      colouring,
		FilterProperty: *filterproperty,
		FilterValue:    *filtervalue,
	}

	for _, qid := range *qids {
		resolved, err := wikidata.CachedDirectInstancesInClass(qid, *cli.Language)
		if err != nil {
			return err
		}
		ui.Info().Msgf("Class %v contributes %v properties", qid, len(resolved))
		for pid := range resolved {
			opts.Properties = append(opts.Properties, pid)
		}
	}

	if *eidfile != "" {
		lines, err := util.ReadLines(*eidfile)
		if err != nil {
			return errors.Wrapf(err, "problem reading entity file %v", *eidfile)
		}
		entities := make(index.IDSet, len(lines))
		for _, eid := range lines {
			entities.Add(eid)
		}
		ui.Info().Msgf("Restricting to %v entities from %v", len(entities), *eidfile)
		opts.FilterEntities = entities
	}

	context, err := engine.NewAccumulator(indexes, opts).Run(dumppath)
	if err != nil {
		return err
	}

	ui.Info().Msgf("Context has %v objects, %v attributes", len(context.Objects), len(context.Attributes))

	outfile, err := os.Create(outpath)
	if err != nil {
		return errors.Wrapf(err, "problem creating context file %v", outpath)
	}
	defer outfile.Close()

	return WriteContext(outfile, context, indexes.Labels)
}
