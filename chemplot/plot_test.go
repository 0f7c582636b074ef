/*
 * plot_test.go
 *
 * Copyright 2026 The gofluct authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*This provides some tests for the plotting functions, in the form of little functions
 * that have practical applications*/

package chemplot

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/outline"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

func testAnalysis(Te *testing.T) *fluct.Analysis {
	var residues []*fluct.Residue
	var atoms []*fluct.Atom
	for id := 1; id <= 10; id++ {
		r := &fluct.Residue{ID: id, Atoms: []int{id}, RMSDs: make([]float64, 20)}
		a := &fluct.Atom{ID: id, Residue: id, RMSDs: make([]r3.Vec, 20)}
		sum := 0.0
		for f := 1; f < 20; f++ {
			r.RMSDs[f] = float64(id*f%7) * 0.05
			a.RMSDs[f] = r3.Vec{X: r.RMSDs[f]}
			sum += r.RMSDs[f]
		}
		r.MinRMSD, r.MaxRMSD, r.RMSF = 0, 0.3, sum/20
		residues = append(residues, r)
		atoms = append(atoms, a)
	}
	A, err := fluct.NewAnalysis(20, residues, atoms)
	if err != nil {
		Te.Fatal(err)
	}
	return A
}

func exists(Te *testing.T, name string) {
	st, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if st.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestBasicPlot(Te *testing.T) {
	p := basicPlot("Residue 4", "Frame", "RMSD")
	if p.Title.Text != "Residue 4" || p.X.Label.Text != "Frame" || p.Y.Label.Text != "RMSD" {
		Te.Errorf("labels not set: %q %q %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	if p.Title.Padding != 3*vg.Millimeter {
		Te.Errorf("unexpected title padding %v", p.Title.Padding)
	}
	name := filepath.Join(Te.TempDir(), "empty.svg")
	if err := p.Save(Width, Height, name); err != nil {
		Te.Fatal(err)
	}
	exists(Te, name)
}

func TestDeviationPlot(Te *testing.T) {
	A := testAnalysis(Te)
	name := filepath.Join(Te.TempDir(), "rmsd.png")
	if err := DeviationPlot(A, []int{1, 2, 3, 4, 5, 6, 7, 8}, "Residue RMSD", name); err != nil {
		Te.Fatal(err)
	}
	exists(Te, name)
	if err := DeviationPlot(A, []int{42}, "Residue RMSD", name); err == nil {
		Te.Error("expected an error for a residue not in the analysis")
	}
}

func TestProfileAndPopulationPlots(Te *testing.T) {
	A := testAnalysis(Te)
	cfg := outline.DefaultConfig()
	cfg.Filter = 1
	O, err := outline.New(A, nil, cfg, log.New(io.Discard))
	if err != nil {
		Te.Fatal(err)
	}
	R, err := O.Recompute()
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"profile.png", "profile.svg"} {
		name = filepath.Join(dir, name)
		if err := ProfilePlot(R, []int{2, 3}, "RMSF", name); err != nil {
			Te.Fatal(err)
		}
		exists(Te, name)
	}
	name := filepath.Join(dir, "population.png")
	if err := PopulationPlot(R, "Population", name); err != nil {
		Te.Fatal(err)
	}
	exists(Te, name)
}
