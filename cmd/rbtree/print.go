package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

type tree = Trees.RBTree[int, uint32]

var (
	redKey   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	blackKey = color.New(color.FgHiWhite).SprintFunc()
)

func colored(n Trees.Node[int, uint32]) string {
	if n.Red() {
		return redKey(n.Key())
	}
	return blackKey(n.Key())
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, len(args))
	for i, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "key #%d", i)
		}
		keys[i] = k
	}
	return keys, nil
}

func printInOrder(w io.Writer, t *tree) {
	fmt.Fprint(w, "in-order:")
	for n := range t.Nodes() {
		fmt.Fprint(w, " ", colored(n))
	}
	fmt.Fprintln(w)
}

func printLevels(w io.Writer, t *tree) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"depth", "key", "color"})
	for d, n := range t.LevelNodes() {
		c := "black"
		if n.Red() {
			c = "red"
		}
		tw.AppendRow(table.Row{d, colored(n), c})
	}
	tw.AppendFooter(table.Row{"height", t.Height(), fmt.Sprintf("black height %d", t.BlackHeight())})
	tw.Render()
}

func verify(t *tree) error {
	return errors.Wrap(t.Verify(), "tree is corrupt")
}
