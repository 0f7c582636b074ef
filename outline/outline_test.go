/*
 * outline_test.go, part of gofluct.
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
 */

package outline

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func testAnalysis(Te *testing.T) *fluct.Analysis {
	residues := []*fluct.Residue{
		{ID: 3, Atoms: []int{5}, RMSDs: []float64{0, 0.5, 0.9}, MinRMSD: 0.5, MaxRMSD: 0.9, RMSF: 1.4 / 3},
		{ID: 1, Atoms: []int{1}, RMSDs: []float64{0, 0.1, 0.2}, MinRMSD: 0.1, MaxRMSD: 0.2, RMSF: 0.1},
		{ID: 4, RMSDs: []float64{0, 0, 0}},
	}
	atoms := []*fluct.Atom{
		{ID: 5, Residue: 3, RMSDs: []r3.Vec{{}, {Y: 1}, {Z: 2}}, MinRMSD: 1, MaxRMSD: 4, RMSF: 5.0 / 3},
		{ID: 1, Residue: 1, RMSDs: []r3.Vec{{}, {X: 0.3}, {X: 0.4}}, MinRMSD: 0.09, MaxRMSD: 0.16, RMSF: 0.25 / 3},
	}
	a, err := fluct.NewAnalysis(3, residues, atoms)
	require.NoError(Te, err)
	return a
}

func testOutliner(Te *testing.T, cfg Config) *Outliner {
	O, err := New(testAnalysis(Te), scheme.DefaultPalettes(), cfg, log.New(io.Discard))
	require.NoError(Te, err)
	return O
}

func TestResidueRMSF(Te *testing.T) {
	O := testOutliner(Te, DefaultConfig())
	R, err := O.Recompute()
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 3, 4}, R.IDs)
	require.Len(Te, R.Colors, 5)
	assert.Equal(Te, []int{-1, 1, -1, 4, 0}, R.Steps)
	assert.Equal(Te, colorful.Color{}, R.Colors[0])
	assert.Equal(Te, colorful.Color{}, R.Colors[2])
	rdpu, _ := scheme.DefaultPalettes().Get("RdPu")
	assert.Equal(Te, rdpu.Colors(5)[1], R.Colors[1])
	assert.Equal(Te, "#7a0177", R.Hex(3))
	assert.Equal(Te, []float64{1, 1, 0, 0, 1}, R.Legend.View())
	assert.Empty(Te, R.Unresolved)
	require.Len(Te, R.Schemes, 1)
	assert.True(Te, R.Scheme(3).Contiguous())

	again, err := O.Recompute()
	require.NoError(Te, err)
	assert.Equal(Te, R, again)

	rel, err := O.SetBoundary(Relative)
	require.NoError(Te, err)
	assert.Equal(Te, GlobalRange, rel.Rule.Source)
	assert.Equal(Te, R.Colors, rel.Colors)
	assert.Equal(Te, Relative, O.Config().Boundary)
}

func TestResidueRMSDRelative(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ResidueRMSD
	cfg.Boundary = Relative
	cfg.Frame = 2
	O := testOutliner(Te, cfg)
	R, err := O.Recompute()
	require.NoError(Te, err)
	assert.Equal(Te, EntityRange, R.Rule.Source)
	require.Len(Te, R.Schemes, 5)
	assert.Nil(Te, R.Schemes[0])
	assert.Nil(Te, R.Schemes[2])
	for _, id := range R.IDs {
		require.NotNil(Te, R.Scheme(id))
		assert.Equal(Te, 4, R.Steps[id], "residue %d", id)
	}
	assert.InDelta(Te, 0.12, R.Scheme(1).Dividers()[0], 1e-12)

	R, err = O.SetFrame(0)
	require.NoError(Te, err)
	assert.Equal(Te, 0, R.Steps[1])
	assert.Equal(Te, 0, R.Steps[3])
	assert.Equal(Te, 4, R.Steps[4]) //zero-span range
}

//A residue whose range or value can't be binned is left uncolored, without
//affecting the others.
func TestUnresolvedResidues(Te *testing.T) {
	nan := math.NaN()
	residues := []*fluct.Residue{
		{ID: 1, RMSDs: []float64{0, 0.1, 0.2}, MinRMSD: 0.1, MaxRMSD: 0.2, RMSF: 0.1},
		{ID: 2, RMSDs: []float64{0, 0.5, 0.1}, MinRMSD: 0.5, MaxRMSD: 0.1, RMSF: 0.2},  //inverted range
		{ID: 6, RMSDs: []float64{0, nan, 0.3}, MinRMSD: nan, MaxRMSD: 0.3, RMSF: nan},  //NaN range
		{ID: 7, RMSDs: []float64{0, nan, 0.3}, MinRMSD: 0.1, MaxRMSD: 0.3, RMSF: 0.15}, //NaN value
	}
	a, err := fluct.NewAnalysis(3, residues, nil)
	require.NoError(Te, err)
	cfg := DefaultConfig()
	cfg.Mode = ResidueRMSD
	cfg.Boundary = Relative
	cfg.Frame = 1
	O, err := New(a, scheme.DefaultPalettes(), cfg, log.New(io.Discard))
	require.NoError(Te, err)
	R, err := O.Recompute()
	require.NoError(Te, err)

	assert.ElementsMatch(Te, []int{2, 6, 7}, R.Unresolved)
	for _, id := range R.Unresolved {
		assert.Equal(Te, -1, R.Steps[id], "residue %d", id)
		assert.Equal(Te, colorful.Color{}, R.Colors[id], "residue %d", id)
		assert.Equal(Te, "#000000", R.Hex(id))
	}
	assert.Nil(Te, R.Scheme(2))
	assert.Nil(Te, R.Scheme(6))
	assert.NotNil(Te, R.Scheme(7))

	assert.Equal(Te, 0, R.Steps[1])
	assert.Equal(Te, R.StepColors[0], R.Colors[1])
	assert.Equal(Te, []float64{0}, R.StepNumbers())
	assert.Equal(Te, 1, R.Legend.Total())
}

func TestAtomRMSD(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = AtomRMSD
	cfg.Frame = 1
	O := testOutliner(Te, cfg)
	R, err := O.Recompute()
	require.NoError(Te, err)
	assert.Equal(Te, AtomLevel, R.Rule.Level)
	assert.Equal(Te, []int{1, 5}, R.IDs)
	require.Len(Te, R.Colors, 6)
	assert.Equal(Te, 0, R.Steps[1])
	assert.Equal(Te, 1, R.Steps[5])
	assert.InDelta(Te, 1.0, R.Values[5], 1e-12)

	R, err = O.SetMode(AtomRMSF)
	require.NoError(Te, err)
	assert.Equal(Te, 0, R.Steps[1])
	assert.Equal(Te, 4, R.Steps[5])
}

func TestFilter(Te *testing.T) {
	O := testOutliner(Te, DefaultConfig())
	R, err := O.SetFilter(2)
	require.NoError(Te, err)
	assert.Equal(Te, scheme.Mask(), R.Colors[1])
	assert.Equal(Te, scheme.Mask(), R.Colors[4])
	assert.Equal(Te, 1, R.Steps[1])
	assert.Equal(Te, R.Scheme(3)[4].Color, R.Colors[3])

	R, err = O.SetSize(3)
	require.NoError(Te, err)
	assert.Equal(Te, 2, R.Filter)
	R, err = O.SetFilter(3)
	require.NoError(Te, err)
	for _, id := range R.IDs {
		assert.Equal(Te, scheme.Mask(), R.Colors[id])
	}
}

func TestMonotonic(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ResidueRMSD
	cfg.Frame = 2
	R, err := testOutliner(Te, cfg).Recompute()
	require.NoError(Te, err)
	//values at frame 2: residue 4 -> 0, residue 1 -> 0.2, residue 3 -> 0.9
	assert.LessOrEqual(Te, R.Steps[4], R.Steps[1])
	assert.LessOrEqual(Te, R.Steps[1], R.Steps[3])
}

func TestSetterErrors(Te *testing.T) {
	O := testOutliner(Te, DefaultConfig())
	before := O.Config()
	_, err := O.SetSize(9)
	assert.Error(Te, err)
	_, err = O.SetFrame(3)
	assert.Error(Te, err)
	_, err = O.SetFilter(6)
	assert.Error(Te, err)
	_, err = O.SetPalette("Viridis")
	assert.Error(Te, err)
	_, err = O.SetMode(Mode(7))
	assert.Error(Te, err)
	assert.Equal(Te, before, O.Config())
	_, err = O.SetPalette("set1")
	assert.NoError(Te, err)

	cfg := DefaultConfig()
	cfg.Palette = "Viridis"
	_, err = New(testAnalysis(Te), nil, cfg, nil)
	assert.Error(Te, err)
	_, err = New(nil, nil, DefaultConfig(), nil)
	assert.Error(Te, err)
}

func TestTimeline(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ResidueRMSD
	M, err := testOutliner(Te, cfg).Timeline()
	require.NoError(Te, err)
	r, c := M.Dims()
	assert.Equal(Te, 3, r)
	assert.Equal(Te, 1, c)
	assert.Equal(Te, []float64{3, 0, 0, 0, 0}, M.View(0, 0).View())
	assert.Equal(Te, []float64{1, 1, 0, 0, 1}, M.View(2, 0).View())
}

func TestParse(Te *testing.T) {
	for _, s := range []string{"residue-rmsd", "RESIDUE_RMSD", " Residue-RMSD "} {
		m, err := ParseMode(s)
		require.NoError(Te, err)
		assert.Equal(Te, ResidueRMSD, m)
	}
	_, err := ParseMode("chain-rmsf")
	assert.Error(Te, err)
	b, err := ParseBoundary("Relative")
	require.NoError(Te, err)
	assert.Equal(Te, Relative, b)
	assert.Equal(Te, "atom-rmsf", AtomRMSF.String())
	_, err = RuleFor(AtomRMSD, Boundary(2))
	assert.Error(Te, err)
}
