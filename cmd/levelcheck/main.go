// Command levelcheck loads a level file, prints it as ASCII art and runs the
// level check scripts against it. It exits non-zero when any check fails,
// which makes it usable as a pre-commit gate for exported levels.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/blockpush/checks"
	"github.com/milk9111/blockpush/grid"
	"github.com/milk9111/blockpush/levels"
)

var embedded = flag.Bool("embedded", false, "load the level from the shipped set instead of disk")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: levelcheck [-embedded] <level>\n")
		os.Exit(2)
	}
	name := flag.Arg(0)

	var (
		lvl *levels.Level
		err error
	)
	if *embedded {
		lvl, err = levels.LoadLevelFromFS(name)
	} else {
		lvl, err = levels.LoadLevel(name)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%dx%d)\n", lvl.Name, lvl.Width, lvl.Height)
	printLevel(lvl)

	results, err := checks.RunAll(lvl)
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, r := range results {
		if r.OK {
			fmt.Printf("PASS %s\n", r.Script)
			continue
		}
		failed = true
		fmt.Printf("FAIL %s: %s\n", r.Script, r.Reason)
	}
	if failed {
		os.Exit(1)
	}
}

func printLevel(lvl *levels.Level) {
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			fmt.Print(string(tileRune(lvl.At(x, y))))
		}
		fmt.Println()
	}
}

func tileRune(tile int) rune {
	switch tile {
	case grid.TileWall:
		return '#'
	case grid.TileBlock:
		return '$'
	case grid.TileGoal:
		return '.'
	case grid.TilePlayer:
		return '@'
	default:
		return ' '
	}
}
