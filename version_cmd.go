package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "Display version and status information." }
func (*versionCmd) Usage() string            { return "price-upload version\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("gnuCash: Share Price Upload")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build date: %s\n", buildDate)
	return subcommands.ExitSuccess
}
