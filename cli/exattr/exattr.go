// Copyright (c) 2020 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// exattr reads and writes extended attributes on filesystem entries.
//  -g <name>       print the value of the named attribute
//  -s <name=value> set an attribute
//  -r <name>       remove the named attribute
//  -apply <file>   apply attributes from a YAML manifest
// With no operation flag, the attribute names on each path are listed.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/intel-hpdd/logging/alert"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	exattr "github.com/wastore/go-exattr"
)

var (
	getName   string
	setAttr   string
	rmName    string
	applyFile string
	supported bool
)

func init() {
	flag.StringVar(&getName, "g", "", "print the value of the named attribute")
	flag.StringVar(&setAttr, "s", "", "set an attribute, given as name=value")
	flag.StringVar(&rmName, "r", "", "remove the named attribute")
	flag.StringVar(&applyFile, "apply", "", "apply attributes from a YAML manifest")
	flag.BoolVar(&supported, "supported", false, "report platform support and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-g name|-s name=value|-r name|-apply file|-supported] <path>...\n", os.Args[0])
		flag.PrintDefaults()
	}
}

type manifestEntry struct {
	Path  string            `yaml:"path"`
	Attrs map[string]string `yaml:"attrs"`
}

func applyManifest(file string) error {
	buf, err := ioutil.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "read manifest")
	}

	var entries []manifestEntry
	if err := yaml.Unmarshal(buf, &entries); err != nil {
		return errors.Wrap(err, "parse manifest")
	}

	for _, e := range entries {
		for name, value := range e.Attrs {
			if err := exattr.Set(e.Path, name, []byte(value)); err != nil {
				return errors.Wrapf(err, "%s %s", e.Path, name)
			}
		}
	}
	return nil
}

func main() {
	flag.Parse()

	if supported {
		fmt.Println(exattr.Supported())
		return
	}

	if applyFile != "" {
		if err := applyManifest(applyFile); err != nil {
			alert.Fatal(err)
		}
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var setName, setValue string
	if setAttr != "" {
		i := strings.Index(setAttr, "=")
		if i < 0 {
			alert.Fatal("-s takes name=value")
		}
		setName, setValue = setAttr[:i], setAttr[i+1:]
	}

	for _, path := range flag.Args() {
		var err error
		switch {
		case getName != "":
			var value []byte
			var ok bool
			value, ok, err = exattr.Get(path, getName)
			if err == nil && !ok {
				fmt.Fprintf(os.Stderr, "%s: no attribute %s\n", path, getName)
				continue
			}
			if err == nil {
				fmt.Printf("%s\n", value)
			}
		case setAttr != "":
			err = exattr.Set(path, setName, []byte(setValue))
		case rmName != "":
			err = exattr.Remove(path, rmName)
		default:
			var names []string
			names, err = exattr.List(path)
			for _, name := range names {
				if flag.NArg() > 1 {
					fmt.Printf("%s: %s\n", path, name)
				} else {
					fmt.Println(name)
				}
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
