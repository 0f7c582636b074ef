/*
 * plot.go, part of gofluct.
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

package chemplot

import (
	"fmt"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/outline"
	"github.com/rmera/gofluct/scheme"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Width and Height of the saved plots.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//DeviationPlot plots the RMSD of the given residues against the frame number, and saves it
//to filename, in the format given by its extension (png, svg, pdf...). The lines are
//colored with the qualitative palette Set1, repeating colors for more than 7 residues.
func DeviationPlot(A *fluct.Analysis, residues []int, title, filename string) error {
	if len(residues) == 0 {
		return fmt.Errorf("gofluct/chemplot: no residues to plot")
	}
	palette, ok := scheme.DefaultPalettes().Get("Set1")
	if !ok {
		return fmt.Errorf("gofluct/chemplot: Set1 palette not available")
	}
	colors := palette.Colors(scheme.MaxSize)
	p := basicPlot(title, "Frame", "RMSD")
	for i, id := range residues {
		r := A.Residue(id)
		if r == nil {
			return fmt.Errorf("gofluct/chemplot: residue %d not in the analysis", id)
		}
		pts := make(plotter.XYs, len(r.RMSDs))
		for f, v := range r.RMSDs {
			pts[f].X = float64(f)
			pts[f].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("gofluct/chemplot: residue %d: %w", id, err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = rgba(colors[i%len(colors)])
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("Residue %d", id), l)
	}
	p.Legend.Top = true
	return p.Save(Width, Height, filename)
}

//ProfilePlot plots the value used to color each entity of R against its ID, with the
//color it got, and saves it to filename. If highlight is not nil, only the entities in it
//are drawn as filled circles.
func ProfilePlot(R *outline.Result, highlight []int, title, filename string) error {
	if len(R.IDs) == 0 {
		return fmt.Errorf("gofluct/chemplot: nothing to plot")
	}
	pts := make(plotter.XYs, len(R.IDs))
	for i, id := range R.IDs {
		pts[i].X = float64(id)
		pts[i].Y = R.Values[id]
	}
	ylabel := R.Rule.Statistic.String()
	if R.Rule.Statistic == outline.RMSD {
		ylabel = fmt.Sprintf("%s (frame %d)", ylabel, R.Frame)
	}
	p := basicPlot(title, fmt.Sprintf("%s ID", R.Rule.Level), ylabel)
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("gofluct/chemplot: %w", err)
	}
	l.LineStyle.Color = rgba(scheme.Mask())
	l.LineStyle.Width = vg.Points(0.5)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		id := R.IDs[i]
		g := draw.GlyphStyle{Color: rgba(R.Colors[id]), Radius: vg.Points(3), Shape: draw.RingGlyph{}}
		if highlight == nil || isInInt(highlight, id) {
			g.Shape = draw.CircleGlyph{}
		}
		return g
	}
	p.Add(l, s)
	return p.Save(Width, Height, filename)
}

//PopulationPlot draws the number of entities in each step of R as a bar chart, each
//bar with the color of its step, and saves it to filename. Bars are labeled with the
//captions of the steps when there is a single scheme, and with the step numbers otherwise.
func PopulationPlot(R *outline.Result, title, filename string) error {
	counts := R.Legend.View()
	p := basicPlot(title, "Step", "Entities")
	var global scheme.Scheme
	if R.Rule.Source == outline.GlobalRange && len(R.Schemes) > 0 {
		global = R.Schemes[0]
	}
	names := make([]string, len(counts))
	for i, c := range counts {
		b, err := plotter.NewBarChart(plotter.Values{c}, vg.Points(20))
		if err != nil {
			return fmt.Errorf("gofluct/chemplot: step %d: %w", i, err)
		}
		b.XMin = float64(i)
		if i < len(R.StepColors) {
			b.Color = rgba(scheme.FilterColor(scheme.Step{Number: i, Color: R.StepColors[i]}, R.Filter))
		}
		p.Add(b)
		names[i] = fmt.Sprintf("%d", i)
		if global != nil {
			names[i] = global[i].Caption()
		}
	}
	p.NominalX(names...)
	return p.Save(Width, Height, filename)
}
