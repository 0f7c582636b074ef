/*
 * outline.go, part of gofluct.
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
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/histo"
	"github.com/rmera/gofluct/scheme"
)

//Config contains the display settings of an outline.
type Config struct {
	Mode     Mode
	Boundary Boundary
	Palette  string
	Size     int
	Filter   int //steps numbered below Filter get the mask color.
	Frame    int //the frame used by the RMSD modes.
}

//DefaultConfig returns a configuration for residue RMSF, with 5 absolute
//steps of the RdPu palette and no filter.
func DefaultConfig() Config {
	return Config{Mode: ResidueRMSF, Boundary: Absolute, Palette: "RdPu", Size: 5}
}

//Result contains the colors of every entity for one configuration. The slices
//indexed by entity ID have one element more than the largest ID. Positions that
//don't belong to an entity, or whose entity couldn't be resolved, are black in Colors
//and -1 in Steps.
type Result struct {
	Config
	Rule       Rule
	IDs        []int            //IDs of the colored entities, sorted
	Values     []float64        //the values resolved
	Colors     []colorful.Color //after filtering
	Steps      []int            //step numbers, before filtering
	Schemes    []scheme.Scheme  //a single scheme, or one per entity ID if Rule.Source is EntityRange.
	StepColors []colorful.Color //the palette colors, one per step.
	Unresolved []int
	Legend     *histo.Data //populations of the steps.
}

//Scheme returns the scheme used for the entity id, or nil.
func (R *Result) Scheme(id int) scheme.Scheme {
	if R.Rule.Source == GlobalRange {
		if len(R.Schemes) == 0 {
			return nil
		}
		return R.Schemes[0]
	}
	if id < 0 || id >= len(R.Schemes) {
		return nil
	}
	return R.Schemes[id]
}

//Hex returns the color of the entity id as "#rrggbb".
func (R *Result) Hex(id int) string {
	if id < 0 || id >= len(R.Colors) {
		return ""
	}
	return R.Colors[id].Hex()
}

//StepNumbers returns the step number of every resolved entity, in ID order.
func (R *Result) StepNumbers() []float64 {
	ret := make([]float64, 0, len(R.IDs))
	for _, id := range R.IDs {
		if R.Steps[id] >= 0 {
			ret = append(ret, float64(R.Steps[id]))
		}
	}
	return ret
}

//Outliner assigns a color to every residue or atom of an analysis.
type Outliner struct {
	analysis *fluct.Analysis
	palettes *scheme.PaletteSet
	cfg      Config
	logger   *log.Logger
}

//New returns an Outliner for the analysis a. If palettes is nil, the default palettes are used,
//if logger is nil, the default logger. It is an error for cfg to name an unknown palette or
//an invalid size, filter or frame.
func New(a *fluct.Analysis, palettes *scheme.PaletteSet, cfg Config, logger *log.Logger) (*Outliner, error) {
	if a == nil {
		return nil, fmt.Errorf("gofluct/outline: nil analysis")
	}
	if palettes == nil {
		palettes = scheme.DefaultPalettes()
	}
	if logger == nil {
		logger = log.Default()
	}
	O := &Outliner{analysis: a, palettes: palettes, logger: logger}
	if err := O.check(cfg); err != nil {
		return nil, err
	}
	O.cfg = cfg
	return O, nil
}

//Config returns the current configuration.
func (O *Outliner) Config() Config {
	return O.cfg
}

func (O *Outliner) check(cfg Config) error {
	if _, err := RuleFor(cfg.Mode, cfg.Boundary); err != nil {
		return err
	}
	if _, ok := O.palettes.Get(cfg.Palette); !ok {
		return fmt.Errorf("gofluct/outline: unknown palette %q", cfg.Palette)
	}
	if cfg.Size < scheme.MinSize || cfg.Size > scheme.MaxSize {
		return fmt.Errorf("gofluct/outline: size %d out of range [%d, %d]", cfg.Size, scheme.MinSize, scheme.MaxSize)
	}
	if cfg.Filter < 0 || cfg.Filter > cfg.Size {
		return fmt.Errorf("gofluct/outline: filter %d out of range [0, %d]", cfg.Filter, cfg.Size)
	}
	if cfg.Frame < 0 || cfg.Frame >= O.analysis.Frames {
		return fmt.Errorf("gofluct/outline: frame %d out of range [0, %d)", cfg.Frame, O.analysis.Frames)
	}
	return nil
}

//Recompute colors all the entities with the current configuration.
func (O *Outliner) Recompute() (*Result, error) {
	return O.compute(O.cfg)
}

//set checks and computes the configuration cfg, and adopts it if it succeeds.
func (O *Outliner) set(cfg Config) (*Result, error) {
	if err := O.check(cfg); err != nil {
		return nil, err
	}
	r, err := O.compute(cfg)
	if err != nil {
		return nil, err
	}
	O.cfg = cfg
	return r, nil
}

//SetMode changes the mode and recomputes the colors.
func (O *Outliner) SetMode(m Mode) (*Result, error) {
	cfg := O.cfg
	cfg.Mode = m
	return O.set(cfg)
}

//SetBoundary changes the boundary and recomputes the colors.
func (O *Outliner) SetBoundary(b Boundary) (*Result, error) {
	cfg := O.cfg
	cfg.Boundary = b
	return O.set(cfg)
}

//SetPalette changes the palette and recomputes the colors.
func (O *Outliner) SetPalette(name string) (*Result, error) {
	cfg := O.cfg
	cfg.Palette = name
	return O.set(cfg)
}

//SetSize changes the number of steps and recomputes the colors. The filter is
//lowered if it would exceed the new size.
func (O *Outliner) SetSize(size int) (*Result, error) {
	cfg := O.cfg
	cfg.Size = size
	if cfg.Filter > size {
		cfg.Filter = size
	}
	return O.set(cfg)
}

//SetFilter changes the filter and recomputes the colors.
func (O *Outliner) SetFilter(filter int) (*Result, error) {
	cfg := O.cfg
	cfg.Filter = filter
	return O.set(cfg)
}

//SetFrame changes the frame and recomputes the colors.
func (O *Outliner) SetFrame(frame int) (*Result, error) {
	cfg := O.cfg
	cfg.Frame = frame
	return O.set(cfg)
}

//entity is what the outliner needs to know about a residue or an atom.
type entity struct {
	id       int
	min, max float64
	value    float64
}

func (O *Outliner) entities(rule Rule, frame int) ([]entity, int) {
	a := O.analysis
	var ret []entity
	if rule.Level == AtomLevel {
		ret = make([]entity, len(a.Atoms))
		for i, at := range a.Atoms {
			ret[i] = entity{id: at.ID, min: at.MinRMSD, max: at.MaxRMSD, value: at.RMSF}
			if rule.Statistic == RMSD {
				ret[i].value = at.SquaredRMSD(frame)
			}
		}
		return ret, a.MaxAtomID()
	}
	ret = make([]entity, len(a.Residues))
	for i, r := range a.Residues {
		ret[i] = entity{id: r.ID, min: r.MinRMSD, max: r.MaxRMSD, value: r.RMSF}
		if rule.Statistic == RMSD {
			ret[i].value = r.RMSDs[frame]
		}
	}
	return ret, a.MaxResidueID()
}

func (O *Outliner) globalRange(rule Rule) fluct.Range {
	e := O.analysis.Extrema
	switch {
	case rule.Level == AtomLevel && rule.Statistic == RMSD:
		return e.AtomRMSD
	case rule.Level == AtomLevel:
		return e.AtomRMSF
	case rule.Statistic == RMSD:
		return e.ResidueRMSD
	}
	return e.ResidueRMSF
}

//compute colors the entities for cfg, which must have been checked. A failure to build the global
//scheme is an error, while failures for single entities are logged and recorded in Unresolved.
func (O *Outliner) compute(cfg Config) (*Result, error) {
	rule, err := RuleFor(cfg.Mode, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	palette, ok := O.palettes.Get(cfg.Palette)
	if !ok {
		return nil, fmt.Errorf("gofluct/outline: unknown palette %q", cfg.Palette)
	}
	ents, maxID := O.entities(rule, cfg.Frame)
	R := &Result{
		Config:     cfg,
		Rule:       rule,
		IDs:        make([]int, 0, len(ents)),
		Values:     make([]float64, maxID+1),
		Colors:     make([]colorful.Color, maxID+1),
		Steps:      make([]int, maxID+1),
		StepColors: palette.Colors(cfg.Size),
		Legend:     histo.NewData(histo.Ordinals(cfg.Size), nil),
	}
	for i := range R.Steps {
		R.Steps[i] = -1
	}
	if rule.Source == GlobalRange {
		rng := O.globalRange(rule)
		s, err := scheme.Generate(rng.Min, rng.Max, palette, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("gofluct/outline: %s %s scheme: %w", rule.Level, rule.Statistic, err)
		}
		R.Schemes = []scheme.Scheme{s}
	} else {
		R.Schemes = make([]scheme.Scheme, maxID+1)
	}
	for _, e := range ents {
		R.IDs = append(R.IDs, e.id)
		R.Values[e.id] = e.value
		s := R.Scheme(e.id)
		if rule.Source == EntityRange {
			s, err = scheme.Generate(e.min, e.max, palette, cfg.Size)
			if err != nil {
				O.logger.Warn("can't build scheme", rule.Level.String(), e.id, "err", err)
				R.Unresolved = append(R.Unresolved, e.id)
				continue
			}
			R.Schemes[e.id] = s
		}
		step := s.Resolve(e.value)
		if !step.Valid() {
			O.logger.Warn("value out of every step", rule.Level.String(), e.id, "value", e.value)
			R.Unresolved = append(R.Unresolved, e.id)
			continue
		}
		R.Steps[e.id] = step.Number
		R.Colors[e.id] = scheme.FilterColor(step, cfg.Filter)
		R.Legend.AddData(float64(step.Number))
	}
	sort.Ints(R.IDs)
	O.logger.Debug("outline computed", "mode", cfg.Mode, "boundary", cfg.Boundary, "palette", palette.Name, "size", cfg.Size, "entities", len(R.IDs), "unresolved", len(R.Unresolved))
	return R, nil
}

//Timeline returns the step populations for every frame, with the current configuration
//and one row per frame. Only the RMSD modes change from frame to frame.
func (O *Outliner) Timeline() (*histo.Matrix, error) {
	M := histo.NewMatrix(O.analysis.Frames, 1, histo.Ordinals(O.cfg.Size))
	cfg := O.cfg
	for f := 0; f < O.analysis.Frames; f++ {
		cfg.Frame = f
		r, err := O.compute(cfg)
		if err != nil {
			return nil, fmt.Errorf("gofluct/outline: frame %d: %w", f, err)
		}
		if err := M.NewHisto(f, 0, nil, r.StepNumbers()); err != nil {
			return nil, err
		}
	}
	return M, nil
}
