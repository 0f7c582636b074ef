/*
 * scheme.go, part of gofluct.
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

package scheme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//Step is a colored, half-open interval [Min, Max) of values. Number is
//the position of the step in its scheme.
type Step struct {
	Number int
	Min    float64
	Max    float64
	Color  colorful.Color
}

//InvalidStep returns the step that Resolve returns for values that no step contains.
func InvalidStep() Step {
	nan := math.NaN()
	return Step{Number: -1, Min: nan, Max: nan, Color: colorful.Color{R: nan, G: nan, B: nan}}
}

//Valid returns false for the InvalidStep.
func (S Step) Valid() bool {
	return S.Number >= 0 && !math.IsNaN(S.Min) && !math.IsNaN(S.Max)
}

//Contains returns true if Min <= v < Max.
func (S Step) Contains(v float64) bool {
	return S.Min <= v && v < S.Max
}

//Hex returns the color of the step as "#rrggbb", or an empty string for an invalid step.
func (S Step) Hex() string {
	if !S.Valid() || !S.Color.IsValid() {
		return ""
	}
	return S.Color.Hex()
}

//Caption returns a text such as "0.10000 <= x <  0.20000" describing the step.
func (S Step) Caption() string {
	return S.CaptionWith(8, 5, "x")
}

//CaptionWith is like Caption, with the given width and precision for the numbers, and name for the variable.
//The lower bound is omitted if it is not positive, the upper bound if it is infinite.
func (S Step) CaptionWith(width, precision int, name string) string {
	text := make([]string, 0, 3)
	if S.Min > 0 {
		text = append(text, FormatNumber(S.Min, width, precision)+" <=")
	}
	text = append(text, name)
	if S.Max < math.Inf(1) {
		text = append(text, "< "+FormatNumber(S.Max, width, precision))
	}
	return strings.Join(text, " ")
}

func (S Step) String() string {
	if !S.Valid() {
		return "invalid step"
	}
	return fmt.Sprintf("%d %s [%g, %g)", S.Number, S.Hex(), S.Min, S.Max)
}

//smallest positive normal float32
const tiny = 0x1p-126

//FormatNumber formats v with the given width and precision. Positive values too
//small to be distinguished from 0 are printed as "~0".
func FormatNumber(v float64, width, precision int) string {
	if v > 0 && v < tiny {
		return "~0"
	}
	return fmt.Sprintf("%*.*f", width, precision, v)
}

//Mask returns the color given to steps below the filter (black).
func Mask() colorful.Color {
	return colorful.Color{R: 0, G: 0, B: 0}
}

//FilterColor returns the color of step if its Number is at least filter,
//otherwise the Mask color.
func FilterColor(step Step, filter int) colorful.Color {
	if step.Number >= filter {
		return step.Color
	}
	return Mask()
}

//Scheme is an ordered sequence of contiguous steps. The first step
//is unbounded below and the last, unbounded above.
type Scheme []Step

//Generate splits [min, max] into size steps of equal width, colored with the palette's colors for
//size, in order. The first step is then extended to -Inf and the last to +Inf, so every number
//belongs to exactly one step.
//If min == max, all the interior boundaries collapse to min: values under min fall in the first
//step and everything else in the last.
func Generate(min, max float64, p *Palette, size int) (Scheme, error) {
	if p == nil {
		return nil, fmt.Errorf("gofluct/scheme: nil palette")
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("gofluct/scheme: size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("gofluct/scheme: range [%g, %g] is not finite", min, max)
	}
	if min > max {
		return nil, fmt.Errorf("gofluct/scheme: range minimum %g larger than maximum %g", min, max)
	}
	colors := p.Colors(size)
	span := (max - min) / float64(size)
	S := make(Scheme, size)
	for i := range S {
		S[i] = Step{
			Number: i,
			Min:    min + span*float64(i),
			Max:    min + span*float64(i+1),
			Color:  colors[i],
		}
	}
	S[0].Min = math.Inf(-1)
	S[size-1].Max = math.Inf(1)
	return S, nil
}

//Resolve returns the first step of the scheme containing v, or the InvalidStep if none does.
func Resolve(S Scheme, v float64) Step {
	for _, s := range S {
		if s.Contains(v) {
			return s
		}
	}
	return InvalidStep()
}

//Resolve is the method version of the Resolve function.
func (S Scheme) Resolve(v float64) Step {
	return Resolve(S, v)
}

//Len returns the number of steps in the scheme.
func (S Scheme) Len() int {
	return len(S)
}

//Dividers returns the boundaries between consecutive steps.
func (S Scheme) Dividers() []float64 {
	if len(S) < 2 {
		return nil
	}
	ret := make([]float64, 0, len(S)-1)
	for _, s := range S[:len(S)-1] {
		ret = append(ret, s.Max)
	}
	return ret
}

//Contiguous returns true if the steps are numbered in order, each one starts
//where the previous ends, the first starts at -Inf and the last ends at +Inf.
func (S Scheme) Contiguous() bool {
	if len(S) == 0 || !math.IsInf(S[0].Min, -1) || !math.IsInf(S[len(S)-1].Max, 1) {
		return false
	}
	for i, s := range S {
		if s.Number != i || s.Min > s.Max {
			return false
		}
		if i > 0 && S[i-1].Max != s.Min {
			return false
		}
	}
	return true
}

//Captions returns the caption of each step, as given by Step.CaptionWith.
func (S Scheme) Captions(width, precision int, name string) []string {
	ret := make([]string, len(S))
	for i, s := range S {
		ret[i] = s.CaptionWith(width, precision, name)
	}
	return ret
}
