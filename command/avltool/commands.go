// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pubavl/avl"
	"github.com/bitmark-inc/pubavl/fault"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "help", "h", "?":
		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--version] --config-file=FILE [command [arguments...]]\n", program)
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "  check       - fill a tree and verify its balance and order\n")
		fmt.Fprintf(w, "  ascend      - list all keys in ascending order\n")
		fmt.Fprintf(w, "  descend     - list all keys in descending order\n")
		fmt.Fprintf(w, "  upper KEY   - list keys >= KEY in ascending order\n")
		fmt.Fprintf(w, "  lower KEY   - list keys <= KEY in descending order\n")
		fmt.Fprintf(w, "  drain-min   - remove keys smallest first\n")
		fmt.Fprintf(w, "  drain-max   - remove keys largest first\n")
		fmt.Fprintf(w, "  print       - display the tree shape, --verbose adds values and balance\n")
		fmt.Fprintf(w, "  version     - display the program version\n")
		fmt.Fprintf(w, "\n")

	default:
		return false
	}
	return true
}

// tree command handler
//
// build the configured workload then run one command on it
func processCommand(w io.Writer, log *logger.L, configuration *Configuration, verbose bool, arguments []string) error {

	command := "check"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	// reject bad arguments before building anything
	var key avl.Word
	switch command {
	case "check", "ascend", "descend", "drain-min", "drain-max", "print":
	case "upper", "lower":
		if len(arguments) < 1 {
			return fault.ErrMissingArgument
		}
		k, err := keyTypes[configuration.KeyType].parse(arguments[0])
		if nil != err {
			return err
		}
		key = k
	default:
		return fault.ErrUnknownCommand
	}

	work, err := newWorkload(log, configuration)
	if nil != err {
		return err
	}

	log.Infof("command: %s", command)

	switch command {
	case "check":
		err = work.check(w)
	case "ascend":
		err = work.list(w, work.tree.Ascend(work.stack))
	case "descend":
		err = work.list(w, work.tree.Descend(work.stack))
	case "upper":
		err = work.list(w, work.tree.AscendFrom(work.stack, key))
	case "lower":
		err = work.list(w, work.tree.DescendFrom(work.stack, key))
	case "drain-min":
		err = work.drain(w, work.tree.DeleteMin)
	case "drain-max":
		err = work.drain(w, work.tree.DeleteMax)
	case "print":
		depth := work.tree.Fprint(w, verbose)
		fmt.Fprintf(w, "depth: %d\n", depth)
	}
	if nil != err {
		log.Errorf("command: %s  error: %s", command, err)
		return err
	}

	return work.free()
}

// verify structure and report the shape
func (work *workload) check(w io.Writer) error {
	if err := work.tree.CheckBalance(work.stack); nil != err {
		return err
	}
	if err := work.tree.CheckOrder(work.stack); nil != err {
		return err
	}
	first := work.tree.First()
	last := work.tree.Last()
	fmt.Fprintf(w, "count: %d\n", work.tree.Count())
	fmt.Fprintf(w, "depth: %d\n", work.tree.Depth())
	fmt.Fprintf(w, "first: %s\n", work.keys.format(first.Key()))
	fmt.Fprintf(w, "last:  %s\n", work.keys.format(last.Key()))
	fmt.Fprintf(w, "nodes: %d\n", work.pool.Live())
	return nil
}

// print every item a walk produces
func (work *workload) list(w io.Writer, seq iter.Seq2[avl.Word, avl.Word]) error {
	n := 0
	for k, v := range seq {
		fmt.Fprintf(w, "%s: %d\n", work.keys.format(k), v.Int())
		n += 1
	}
	work.log.Debugf("listed: %d items", n)
	return work.stack.Err()
}

// remove items one at a time until the tree is empty, checking the
// tree after every removal
func (work *workload) drain(w io.Writer, remove func(*avl.Stack[avl.Word, avl.Word]) (avl.Word, avl.Word, error)) error {
	for {
		k, v, err := remove(work.stack)
		if errors.Is(err, fault.ErrKeyNotFound) {
			break
		}
		if nil != err {
			return err
		}
		if err := work.tree.CheckBalance(work.stack); nil != err {
			return err
		}
		fmt.Fprintf(w, "%s: %d\n", work.keys.format(k), v.Int())
	}
	if !work.tree.IsEmpty() {
		return fmt.Errorf("drain left %d items", work.tree.Count())
	}
	work.log.Debugf("drained: live nodes: %d", work.pool.Live())
	return nil
}
