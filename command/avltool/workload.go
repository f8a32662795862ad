// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pubavl/avl"
	"github.com/bitmark-inc/pubavl/fault"
)

// supported key types
const (
	keyTypeInt   = "int"
	keyTypeUint  = "uint"
	keyTypeFloat = "float"
)

// how to make, parse, compare and display one kind of key
type keyType struct {
	less   avl.LessFunc[avl.Word]
	make   func(i int) avl.Word
	parse  func(s string) (avl.Word, error)
	format func(w avl.Word) string
}

// item i of a workload has key 2i so odd numbers are never present
var keyTypes = map[string]keyType{
	keyTypeInt: {
		less: avl.LessInt,
		make: func(i int) avl.Word { return avl.IntWord(2 * int64(i)) },
		parse: func(s string) (avl.Word, error) {
			i, err := strconv.ParseInt(s, 10, 64)
			if nil != err {
				return 0, fault.ErrNotANumber
			}
			return avl.IntWord(i), nil
		},
		format: func(w avl.Word) string { return strconv.FormatInt(w.Int(), 10) },
	},
	keyTypeUint: {
		less: avl.LessUint,
		make: func(i int) avl.Word { return avl.UintWord(2 * uint64(i)) },
		parse: func(s string) (avl.Word, error) {
			u, err := strconv.ParseUint(s, 10, 64)
			if nil != err {
				return 0, fault.ErrNotANumber
			}
			return avl.UintWord(u), nil
		},
		format: func(w avl.Word) string { return strconv.FormatUint(w.Uint(), 10) },
	},
	keyTypeFloat: {
		less: avl.LessFloat,
		make: func(i int) avl.Word { return avl.FloatWord(float64(i) / 2) },
		parse: func(s string) (avl.Word, error) {
			f, err := strconv.ParseFloat(s, 64)
			if nil != err || math.IsNaN(f) {
				return 0, fault.ErrNotANumber
			}
			return avl.FloatWord(f), nil
		},
		format: func(w avl.Word) string { return strconv.FormatFloat(w.Float(), 'g', -1, 64) },
	},
}

// a tree filled from the configuration
type workload struct {
	log   *logger.L
	keys  keyType
	pool  *avl.Pool[avl.Word, avl.Word]
	tree  *avl.Tree[avl.Word, avl.Word]
	stack *avl.Stack[avl.Word, avl.Word]
}

// newWorkload - create a tree and insert configuration.Count keys
// in seeded random order, the value of each node is its insertion
// sequence number
func newWorkload(log *logger.L, configuration *Configuration) (*workload, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	keys, ok := keyTypes[configuration.KeyType]
	if !ok {
		return nil, fault.ErrConfigKeyTypeInvalid
	}
	if configuration.Count <= 0 {
		return nil, fault.ErrConfigCountInvalid
	}

	pool := avl.NewPool[avl.Word, avl.Word](configuration.Pool.Limit)
	n := pool.Preallocate(configuration.Pool.Preallocate)
	log.Debugf("preallocated: %d nodes", n)

	w := &workload{
		log:   log,
		keys:  keys,
		pool:  pool,
		tree:  avl.New[avl.Word, avl.Word](keys.less, pool),
		stack: avl.NewStack[avl.Word, avl.Word](),
	}

	r := rand.New(rand.NewSource(configuration.Seed))
	for sequence, i := range r.Perm(configuration.Count) {
		key := keys.make(i)
		_, err := w.tree.Insert(w.stack, key, avl.IntWord(int64(sequence)))
		if nil != err {
			log.Errorf("insert: %s  key: %s  error: %s", configuration.KeyType, keys.format(key), err)
			return nil, err
		}
	}
	log.Infof("inserted: %d  depth: %d  pool: %d", w.tree.Count(), w.tree.Depth(), w.pool.Total())

	return w, nil
}

// release all nodes back to the pool
func (w *workload) free() error {
	err := w.tree.FreeAll(w.stack)
	if nil != err {
		return err
	}
	w.log.Debugf("freed: live: %d  available: %d", w.pool.Live(), w.pool.Available())
	return nil
}
