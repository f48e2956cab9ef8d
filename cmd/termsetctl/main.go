// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The termsetctl tool is a line-oriented shell over the handle facade,
// for exercising the library by hand. Sets are created under friendly
// names; the name index is a term-keyed robin-hood map so the tool
// doubles as an end-to-end user of term.Term's Hash/Equal contract.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aristanetworks/glog"

	"github.com/aristanetworks/sortedtermset/apierr"
	"github.com/aristanetworks/sortedtermset/config"
	"github.com/aristanetworks/sortedtermset/handle"
	"github.com/aristanetworks/sortedtermset/internal/configfile"
	"github.com/aristanetworks/sortedtermset/internal/logging"
	"github.com/aristanetworks/sortedtermset/internal/robinhood"
	"github.com/aristanetworks/sortedtermset/internal/util"
	"github.com/aristanetworks/sortedtermset/term"
)

var configFlag = flag.String("config", "",
	"Optional YAML tuning file (max_bucket_size, initial_item_capacity)")

type shell struct {
	cfg     config.Configuration
	table   *handle.Table
	names   *robinhood.Map[term.Term, handle.Handle]
	current handle.Handle
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = configfile.Load(*configFlag)
		if err != nil {
			glog.Fatal(err)
		}
	}

	sh := &shell{
		cfg:   cfg,
		table: handle.NewTable(&logging.Glog{}),
		names: robinhood.New[term.Term, handle.Handle](0),
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("termsetctl (max bucket size %d), \"help\" for commands\n", cfg.MaxBucketSize)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := sh.run(strings.Fields(line)); err != nil {
			fmt.Println("error:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		glog.Fatal(err)
	}
}

func (sh *shell) run(args []string) error {
	switch cmd := args[0]; cmd {
	case "help":
		fmt.Print(`commands:
  new <name>            create a set and switch to it
  use <name>            switch to a named set
  names                 list set names
  release <name>        destroy a named set
  add <term>            insert a term
  remove <term>         delete a term
  find <term>           effective index of a term
  at <i>                term at global index i
  slice <start> <n>     cloned subrange
  size                  element count
  list                  full snapshot in order
  debug                 bucket-level dump
  quit
term syntax: 123 (integer), "text" (bitstring), anything else (atom)
`)
		return nil
	case "new":
		if len(args) != 2 {
			return fmt.Errorf("usage: new <name>")
		}
		name := term.NewAtom(args[1])
		if _, ok := sh.names.Get(name); ok {
			return fmt.Errorf("name %s already in use", args[1])
		}
		h, err := sh.table.New(sh.cfg)
		if err != nil {
			return err
		}
		sh.names.Set(name, h)
		sh.current = h
		fmt.Printf("set %s = handle %d\n", args[1], h)
		return nil
	case "use":
		if len(args) != 2 {
			return fmt.Errorf("usage: use <name>")
		}
		h, ok := sh.names.Get(term.NewAtom(args[1]))
		if !ok {
			return fmt.Errorf("no set named %s", args[1])
		}
		sh.current = h
		return nil
	case "names":
		var names []string
		sh.names.ForEach(func(k term.Term, _ handle.Handle) bool {
			names = append(names, k.String())
			return true
		})
		for _, n := range util.Sorted(names) {
			fmt.Println(n)
		}
		return nil
	case "release":
		if len(args) != 2 {
			return fmt.Errorf("usage: release <name>")
		}
		name := term.NewAtom(args[1])
		h, ok := sh.names.Get(name)
		if !ok {
			return fmt.Errorf("no set named %s", args[1])
		}
		if out := sh.table.Release(h); out != apierr.OK {
			return fmt.Errorf("release: %s", out)
		}
		sh.names.Delete(name)
		if sh.current == h {
			sh.current = 0
		}
		return nil
	}

	// Everything below operates on the current set.
	if sh.current == 0 {
		return fmt.Errorf("no current set; \"new <name>\" first")
	}
	switch cmd := args[0]; cmd {
	case "add":
		item, err := parseTerm(args[1:])
		if err != nil {
			return err
		}
		out, idx := sh.table.Add(sh.current, item)
		fmt.Printf("%s %d\n", out, idx)
	case "remove":
		item, err := parseTerm(args[1:])
		if err != nil {
			return err
		}
		out, idx := sh.table.Remove(sh.current, item)
		if out != apierr.Removed {
			fmt.Println(out)
			return nil
		}
		fmt.Printf("removed %d\n", idx)
	case "find":
		item, err := parseTerm(args[1:])
		if err != nil {
			return err
		}
		idx, out := sh.table.FindIndex(sh.current, item)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Println(idx)
	case "at":
		if len(args) != 2 {
			return fmt.Errorf("usage: at <i>")
		}
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		item, out := sh.table.At(sh.current, i)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Println(item)
	case "slice":
		if len(args) != 3 {
			return fmt.Errorf("usage: slice <start> <n>")
		}
		start, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		items, out := sh.table.Slice(sh.current, start, n)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Println(util.ToAnySlice(items)...)
	case "size":
		n, out := sh.table.Size(sh.current)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Println(n)
	case "list":
		items, out := sh.table.ToList(sh.current)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Println(util.ToAnySlice(items)...)
	case "debug":
		s, out := sh.table.Debug(sh.current)
		if out != apierr.OK {
			fmt.Println(out)
			return nil
		}
		fmt.Print(s)
	default:
		return fmt.Errorf("unknown command %q, try \"help\"", cmd)
	}
	return nil
}

// parseTerm builds a term from the command tail: an integer literal,
// a double-quoted bitstring, or a bare atom.
func parseTerm(args []string) (term.Term, error) {
	if len(args) == 0 {
		return term.Term{}, fmt.Errorf("missing term")
	}
	raw := strings.Join(args, " ")
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return term.NewInteger(v), nil
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return term.NewBitstring([]byte(raw[1 : len(raw)-1]))
	}
	return term.NewAtom(raw), nil
}
