// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pubavl/configuration"
	"github.com/bitmark-inc/pubavl/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultKeyType = keyTypeInt
	defaultCount   = 1000
	defaultSeed    = 42

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// PoolType - node pool sizing, zero limit is unbounded
type PoolType struct {
	Limit       int `gluamapper:"limit" json:"limit"`
	Preallocate int `gluamapper:"preallocate" json:"preallocate"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Count         int                  `gluamapper:"count" json:"count"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Pool          PoolType             `gluamapper:"pool" json:"pool"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,
		Count:         defaultCount,
		Seed:          defaultSeed,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if _, ok := keyTypes[options.KeyType]; !ok {
		return nil, fault.ErrConfigKeyTypeInvalid
	}

	if options.Count <= 0 {
		return nil, fault.ErrConfigCountInvalid
	}

	if options.Pool.Limit < 0 || options.Pool.Preallocate < 0 {
		return nil, fault.ErrConfigPoolInvalid
	}
	if 0 != options.Pool.Limit && options.Pool.Preallocate > options.Pool.Limit {
		return nil, fault.ErrConfigPoolInvalid
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensureAbsolute - if not an absolute path then join with directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
