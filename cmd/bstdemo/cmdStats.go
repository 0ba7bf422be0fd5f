package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	"bst_code/bst"
)

type cmdStats struct {
}

func (cmd *cmdStats) Name() string     { return "stats" }
func (cmd *cmdStats) Synopsis() string { return "summarize a tree built from the given keys" }
func (cmd *cmdStats) Usage() string    { return "stats key...\n" }

func (cmd *cmdStats) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdStats) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tree, err := treeFromArgs(f.Args())
	if err != nil {
		log.Println("bad key:", err)
		return subcommands.ExitUsageError
	}
	writeStats(os.Stdout, tree)
	return subcommands.ExitSuccess
}

func writeStats(w io.Writer, tree *bst.Node) {
	fmt.Fprintln(w, "size:", tree.Size())
	fmt.Fprintln(w, "height:", tree.Height())
	fmt.Fprintln(w, "min:", describe(tree.Min()))
	fmt.Fprintln(w, "max:", describe(tree.Max()))
	fmt.Fprintln(w, "in-order:", tree.InOrder())
}
