// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treedraw"
	"github.com/bitmark-inc/treedraw/avl"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// integer key for the AVL tree interface
type intItem int

// Compare - integer comparison for the AVL interface
func (i intItem) Compare(j intItem) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "square", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "agnostic", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "hspace", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'g'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--square] [--agnostic] [--hspace=N] [--delete=KEY]… [keys-to-insert]", program)
	}

	verbose := len(options["verbose"]) > 0
	square := len(options["square"]) > 0
	agnostic := len(options["agnostic"]) > 0

	hspace := 3
	if len(options["hspace"]) > 0 {
		hspace, err = strconv.Atoi(options["hspace"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert hspace error: %s", program, err)
		}
		if hspace < 1 {
			exitwithstatus.Message("%s: invalid hspace: %d", program, hspace)
		}
	}

	// the classic demonstration sequence if no keys are supplied
	insertKeys := []intItem{10, 20, 30, 40, 50, 25}
	deleteKeys := []intItem{30}

	if len(arguments) > 0 {
		insertKeys = parseKeys(program, arguments)
		deleteKeys = nil
	}
	if len(options["delete"]) > 0 {
		deleteKeys = parseKeys(program, options["delete"])
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "treedraw.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if verbose {
		logging.Levels[logger.DefaultTag] = "info"
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("treedraw")

	tree := avl.New[intItem]()
	for _, key := range insertKeys {
		added := tree.Insert(key)
		log.Infof("insert: %d  added: %t", key, added)
	}

	printer := treedraw.NewPrinter(
		func(p *avl.Node[intItem]) string {
			return fmt.Sprintf("%d[%d]", p.Key(), p.Balance())
		},
		(*avl.Node[intItem]).Left,
		(*avl.Node[intItem]).Right,
	)
	printer.SetSquareBranches(square)
	printer.SetLRAgnostic(agnostic)
	printer.SetHSpace(hspace)

	fmt.Println("Tree structure:")
	if err = printer.Print(os.Stdout, tree.Root()); nil != err {
		exitwithstatus.Message("%s: print error: %s", program, err)
	}
	showInorder(tree)

	for _, key := range deleteKeys {
		removed := tree.Delete(key)
		log.Infof("delete: %d  removed: %t", key, removed)

		fmt.Printf("\nAfter removing %d:\n", key)
		if err = printer.Print(os.Stdout, tree.Root()); nil != err {
			exitwithstatus.Message("%s: print error: %s", program, err)
		}
		showInorder(tree)
	}

	log.Infof("final count: %d  height: %d", tree.Count(), tree.Height())
}

// convert a list of number strings to keys
func parseKeys(program string, list []string) []intItem {
	keys := make([]intItem, 0, len(list))
	for _, s := range list {
		n, err := strconv.Atoi(s)
		if nil != err {
			exitwithstatus.Message("%s: convert key: %q error: %s", program, s, err)
		}
		keys = append(keys, intItem(n))
	}
	return keys
}

// print the ascending key sequence on one line
func showInorder(tree *avl.Tree[intItem]) {
	texts := make([]string, 0, tree.Count())
	tree.Inorder(func(key intItem) {
		texts = append(texts, strconv.Itoa(int(key)))
	})
	fmt.Printf("Inorder traversal: %s\n", strings.Join(texts, " "))
}
