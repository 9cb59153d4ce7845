// Command price-upload loads Yahoo style share price history files into the
// prices table of a GnuCash SQL database.
//
//	price-upload upload -f BHP.AX.csv -s BHP --currency AUD
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

var (
	version   = "2018-06.002E"
	buildDate = "unknown"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to the YAML configuration file")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&uploadCmd{}, "prices")
	subcommands.Register(&listCmd{}, "prices")
	subcommands.Register(&versionCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
