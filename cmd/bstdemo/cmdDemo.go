package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"bst_code/bst"
)

type cmdDemo struct {
}

func (cmd *cmdDemo) Name() string     { return "demo" }
func (cmd *cmdDemo) Synopsis() string { return "run the fixed demonstration sequence" }
func (cmd *cmdDemo) Usage() string    { return "demo\n" }

func (cmd *cmdDemo) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdDemo) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	runDemo(os.Stdout)
	return subcommands.ExitSuccess
}

// describe formats an optional key.
func describe(v int, ok bool) string {
	if !ok {
		return "tree is empty"
	}
	return strconv.Itoa(v)
}

func runDemo(w io.Writer) {
	root := bst.FromValues(8, 3, 1, 6, 17, 7, 10, 14, 4)

	fmt.Fprintln(w, "In-order:", root.InOrder())

	root = root.Insert(5)
	fmt.Fprintln(w, "Insert 5:", root.InOrder())

	fmt.Fprintln(w, "Min (iterative):", describe(root.Min()))
	fmt.Fprintln(w, "Min (recursive):", describe(root.MinRec()))
	fmt.Fprintln(w, "Max (iterative):", describe(root.Max()))
	fmt.Fprintln(w, "Max (recursive):", describe(root.MaxRec()))
	fmt.Fprintln(w, "Height:", root.Height())

	for _, v := range []int{5, 9, 14, 19} {
		fmt.Fprintf(w, "Exists %d: %v\n", v, root.Exists(v))
	}

	root = root.Delete(10)
	fmt.Fprintln(w, "Delete 10:", root.InOrder())

	fmt.Fprintln(w, "Tree:")
	fmt.Fprint(w, root.Pretty())
	fmt.Fprint(w, "Tree (indented):")
	fmt.Fprintln(w, root.Indented())

	other := bst.NewTree()
	fmt.Fprintln(w, "Height of empty tree:", other.Height())
	fmt.Fprintln(w, "Min of empty tree:", describe(other.Min()))
	other = other.Insert(8)
	fmt.Fprintln(w, "Height after one insert:", other.Height())

	root = root.Destroy()
	other = other.Destroy()
	fmt.Fprintln(w, "After destroy:", root.InOrder(), other.InOrder())
}
