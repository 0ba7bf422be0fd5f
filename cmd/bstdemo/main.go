package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"bst_code/bst"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bstdemo: ")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&cmdDemo{}, "")
	subcommands.Register(&cmdPrint{}, "")
	subcommands.Register(&cmdStats{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// treeFromArgs inserts every argument, in order, into a new tree.
func treeFromArgs(args []string) (*bst.Node, error) {
	tree := bst.NewTree()
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		tree = tree.Insert(v)
	}
	return tree, nil
}
