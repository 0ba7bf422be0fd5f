package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
)

type cmdPrint struct {
	style string
}

func (cmd *cmdPrint) Name() string     { return "print" }
func (cmd *cmdPrint) Synopsis() string { return "render a tree built from the given keys" }
func (cmd *cmdPrint) Usage() string {
	return "print [-style pretty|indented] key...\n"
}

func (cmd *cmdPrint) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.style, "style", "pretty", "rendering style: pretty or indented")
}

func (cmd *cmdPrint) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tree, err := treeFromArgs(f.Args())
	if err != nil {
		log.Println("bad key:", err)
		return subcommands.ExitUsageError
	}
	switch cmd.style {
	case "pretty":
		fmt.Print(tree.Pretty())
	case "indented":
		fmt.Println(tree.Indented())
	default:
		log.Printf("unknown style %q", cmd.style)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
