package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeFromArgs(t *testing.T) {
	assert := assert.New(t)

	tree, err := treeFromArgs([]string{"8", "3", "-1", "10"})
	assert.NoError(err)
	assert.Equal([]int{-1, 3, 8, 10}, tree.InOrder())

	tree, err = treeFromArgs(nil)
	assert.NoError(err)
	assert.Nil(tree)

	_, err = treeFromArgs([]string{"8", "x"})
	assert.Error(err)
}

func TestDemo(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer

	runDemo(&out)
	s := out.String()
	assert.Contains(s, "In-order: [1 3 4 6 7 8 10 14 17]\n")
	assert.Contains(s, "Insert 5: [1 3 4 5 6 7 8 10 14 17]\n")
	assert.Contains(s, "Min (iterative): 1\n")
	assert.Contains(s, "Min (recursive): 1\n")
	assert.Contains(s, "Max (iterative): 17\n")
	assert.Contains(s, "Height: 4\n")
	assert.Contains(s, "Exists 14: true\n")
	assert.Contains(s, "Exists 19: false\n")
	assert.Contains(s, "Delete 10: [1 3 4 5 6 7 8 14 17]\n")
	assert.Contains(s, "---8\n")
	assert.Contains(s, "Height of empty tree: -1\n")
	assert.Contains(s, "Min of empty tree: tree is empty\n")
	assert.Contains(s, "Height after one insert: 0\n")
	assert.Contains(s, "After destroy: [] []\n")
}

func TestWriteStats(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer

	tree, _ := treeFromArgs([]string{"2", "1", "3"})
	writeStats(&out, tree)
	assert.Equal("size: 3\nheight: 1\nmin: 1\nmax: 3\nin-order: [1 2 3]\n", out.String())

	out.Reset()
	writeStats(&out, nil)
	assert.Equal("size: 0\nheight: -1\nmin: tree is empty\nmax: tree is empty\nin-order: []\n", out.String())
}
