package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/lvlath-labs/tricolor/arith"
	"github.com/lvlath-labs/tricolor/dimacs"
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/register"
	"github.com/lvlath-labs/tricolor/solver"
)

// generateAdditions writes one .col file per (a, b) pair representable in
// width bits, covering every combination from 0 to 2^width-1 on both
// operands.
func generateAdditions(outDir string, width int) error {
	limit := uint64(1) << uint(width)

	log.WithFields(log.Fields{"width": width, "combinations": limit * limit}).Info("generating addition graphs")

	for a := uint64(0); a < limit; a++ {
		for b := uint64(0); b < limit; b++ {
			name := fmt.Sprintf("add_%dbit_%d_%d", width, a, b)
			path := filepath.Join(outDir, name+".col")

			if err := generateOne(path, name, a, b, width); err != nil {
				return fmt.Errorf("generating %s: %w", name, err)
			}

			log.WithField("file", path).Debug("wrote training graph")
		}
	}

	return nil
}

func generateOne(path, name string, a, b uint64, width int) error {
	g := graph.New()

	regA, err := register.Const(g, a, width)
	if err != nil {
		return err
	}
	regB, err := register.Const(g, b, width)
	if err != nil {
		return err
	}

	if _, _, err := arith.Add(g, regA, regB, arith.NoCarry); err != nil {
		return err
	}

	computer, err := graph.NewComputer(g, solver.Solve, dimacs.Emit)
	if err != nil {
		return err
	}

	if ok, _ := computer.Solve(); !ok {
		return fmt.Errorf("%s: adder circuit is not 3-colorable", name)
	}

	doc, err := computer.Emit(name)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(doc), 0o644)
}
