package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	var err error
	switch sub {
	case "apply":
		cfg, e := parseApplyFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runApply(cfg)
	case "check":
		cfg, e := parseCheckFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runCheck(cfg)
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "strsync: unknown subcommand %q\n", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "strsync: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `strsync - merge translation batches into per-locale strings.xml files

usage: strsync <command> [options]

commands:
  apply      Merge a batch of entries into the resource files, skipping keys
             that already exist.
  check      Report which entries are missing or diverging, without writing.

Use 'strsync apply -h' or 'strsync check -h' for command-specific flags.
`)
}
