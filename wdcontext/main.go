package main

import (
	"os"

	"github.com/fcatools/wdcontext/modules/cli"
	_ "github.com/fcatools/wdcontext/modules/contexts"
	_ "github.com/fcatools/wdcontext/modules/index"
	_ "github.com/fcatools/wdcontext/modules/stats"
	"github.com/rs/zerolog/log"
)

func main() {
	err := cli.Run()

	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
