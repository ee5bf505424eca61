// Command matdb maintains a flat-file materials database mapping
// names to chemical formulas and densities.
//
// Usage:
//
//	matdb [-f materials.dat] add NAME FORMULA DENSITY
//	matdb [-f materials.dat] list
//	matdb [-f materials.dat] get NAME
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/serebrin/xrayopt/material"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: matdb [-f FILE] add NAME FORMULA DENSITY | list | get NAME")
	os.Exit(2)
}

func main() {
	logger := log.New(os.Stderr, "", 0)

	path := flag.String("f", "materials.dat", "materials database file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
	}

	reg := material.NewRegistry(&material.FileStore{Path: *path})
	args := flag.Args()

	switch args[0] {
	case "add":
		if len(args) != 4 {
			usage()
		}
		density, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			logger.Fatal(fmt.Errorf("density %q: %w", args[3], err))
		}
		if err := reg.Add(args[1], args[2], density); err != nil {
			logger.Fatal(err)
		}

	case "list":
		if len(args) != 1 {
			usage()
		}
		names, err := reg.Names()
		if err != nil {
			logger.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "get":
		if len(args) != 2 {
			usage()
		}
		entry, ok, err := reg.Get(args[1])
		if err != nil {
			logger.Fatal(err)
		}
		if !ok {
			logger.Fatalf("material %q not found", args[1])
		}
		fmt.Printf("%s\t%s\t%g\n", entry.Name, entry.Formula, entry.Density)

	default:
		usage()
	}
}
