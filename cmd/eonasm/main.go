// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/eonasm/asm"
	"github.com/ezrec/eonasm/config"
	"github.com/ezrec/eonasm/translate"
)

var f = translate.From

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), f("Usage: %v [-l] [-u] [-v] [-D NAME=VALUE]... [-config file.star] outfile infile...", os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	var listing bool
	var unused bool
	var verbose bool
	var configFile string
	defines := map[string]uint32{}

	log.SetFlags(0)
	log.SetPrefix("eonasm: ")

	flag.Usage = usage
	flag.BoolVar(&listing, "l", false, "Write a listing to stdout")
	flag.BoolVar(&unused, "u", false, "Report unused labels")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&configFile, "config", "", "Starlark configuration file")
	flag.Func("D", "Predefine a constant `NAME=VALUE`", func(arg string) (err error) {
		name, expr, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			err = errors.New(f("expected NAME=VALUE"))
			return
		}
		value, err := asm.Constant(expr)
		if err != nil {
			return
		}
		defines[name] = value
		return
	})

	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	output := flag.Arg(0)
	inputs := flag.Args()[1:]

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	assembler := &asm.Assembler{
		Verbose: verbose,
		Limits:  cfg.Limits,
	}
	for name, value := range cfg.Defines {
		err := assembler.Predefine(name, value)
		if err != nil {
			log.Fatalf("%v: %v: %v", configFile, name, err)
		}
	}
	// Command line defines override the configuration.
	for name, value := range defines {
		err := assembler.Predefine(name, value)
		if err != nil {
			log.Fatalf("-D %v: %v", name, err)
		}
	}

	var sources []asm.Source
	for _, input := range inputs {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		src, err := assembler.ReadSource(input, inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		sources = append(sources, src)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	if listing {
		assembler.Listing = stdout
	}

	w := bufio.NewWriter(ouf)
	err = assembler.Assemble(sources, w)
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = &asm.ErrIO{Path: output, Err: ferr}
	}
	if cerr := ouf.Close(); err == nil && cerr != nil {
		err = &asm.ErrIO{Path: output, Err: cerr}
	}

	if listing || len(assembler.Errors) > 0 {
		serr := assembler.Summary(stdout)
		if serr == nil {
			serr = stdout.Flush()
		}
		if err == nil && serr != nil {
			err = &asm.ErrIO{Path: "stdout", Err: serr}
		}
	}
	stdout.Flush()

	for _, aerr := range assembler.Errors {
		fmt.Fprintln(os.Stderr, aerr)
	}

	if err != nil {
		var assembly *asm.ErrAssembly
		if !errors.As(err, &assembly) {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprintln(os.Stderr, f("%d errors.", max(len(assembler.Errors), 1)))
		os.Exit(1)
	}

	if unused {
		for lbl := range assembler.Labels.Unused() {
			translate.Fprintf(os.Stderr, "unused label: %v\n", lbl)
		}
	}
}
