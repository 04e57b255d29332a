// Package checks runs tengo validation scripts against exported levels. The
// editor refuses to hand out a level that fails a check, and the scripts are
// user-editable on disk so projects can grow their own rules.
package checks

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/blockpush/levels"
	"github.com/milk9111/blockpush/prefabs"
)

// Result is the outcome of one check script.
type Result struct {
	Script string
	OK     bool
	Reason string
}

// Run executes one check script against the level. The script sees `level`
// (rows of tile values), `width` and `height`, and reports through its `ok`
// and `reason` globals.
func Run(name string, src []byte, lvl *levels.Level) (Result, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math"))

	if err := script.Add("level", scriptRows(lvl)); err != nil {
		return Result{}, fmt.Errorf("checks: bind level: %w", err)
	}
	if err := script.Add("width", lvl.Width); err != nil {
		return Result{}, fmt.Errorf("checks: bind width: %w", err)
	}
	if err := script.Add("height", lvl.Height); err != nil {
		return Result{}, fmt.Errorf("checks: bind height: %w", err)
	}

	compiled, err := script.Run()
	if err != nil {
		return Result{}, fmt.Errorf("checks: run %s: %w", name, err)
	}

	return Result{
		Script: name,
		OK:     compiled.Get("ok").Bool(),
		Reason: compiled.Get("reason").String(),
	}, nil
}

// RunAll executes every known check script against the level.
func RunAll(lvl *levels.Level) ([]Result, error) {
	var results []Result
	for _, name := range prefabs.ScriptNames() {
		src, err := prefabs.LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("checks: load %s: %w", name, err)
		}
		res, err := Run(name, src, lvl)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func scriptRows(lvl *levels.Level) []any {
	rows := make([]any, lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		row := make([]any, lvl.Width)
		for x := 0; x < lvl.Width; x++ {
			row[x] = lvl.At(x, y)
		}
		rows[y] = row
	}
	return rows
}
