package index

import (
	"github.com/fcatools/wdcontext/modules/cli"
	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "index [dump file] [output file]",
	Short: "Extracts a helper indexes file from a Wikidata dump",
	Args:  cobra.ExactArgs(2),
}

func init() {
	Command.RunE = Execute
	cli.Root.AddCommand(Command)
}

func Execute(cmd *cobra.Command, args []string) error {
	dumppath, outpath := args[0], args[1]

	indexes, err := Build(dumppath, *cli.Language)
	if err != nil {
		return err
	}

	ui.Info().Msgf("Indexed %v labels, %v instance relations, %v subclass relations",
		len(indexes.Labels), len(indexes.Instances), len(indexes.Subclasses))

	return indexes.Save(outpath)
}
