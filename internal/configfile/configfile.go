// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package configfile loads a set tuning file for the termsetctl demo
// tool. The core library never reads files; this loader exists only so
// the tool can be pointed at a tuning file instead of flags.
package configfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/aristanetworks/sortedtermset/config"
)

// File is the on-disk tuning document.
type File struct {
	MaxBucketSize       int `yaml:"max_bucket_size"`
	InitialItemCapacity int `yaml:"initial_item_capacity"`
}

// Load reads a YAML tuning file and builds a config.Configuration
// from it. An absent max_bucket_size keeps the library default; an
// absent initial_item_capacity counts as zero, which still yields a
// bucket-list capacity hint of 1 through config.FromItemCapacity.
func Load(path string) (config.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Configuration{}, fmt.Errorf("configfile: %v", err)
	}
	return parse(data)
}

func parse(data []byte) (config.Configuration, error) {
	f := File{MaxBucketSize: config.DefaultMaxBucketSize}
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return config.Configuration{}, fmt.Errorf("configfile: %v", err)
	}
	cfg, err := config.FromItemCapacity(f.MaxBucketSize, f.InitialItemCapacity)
	if err != nil {
		return config.Configuration{}, err
	}
	return cfg, nil
}
