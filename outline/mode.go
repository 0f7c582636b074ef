/*
 * mode.go, part of gofluct.
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
	"strings"
)

//Mode selects the entities that are colored and the statistic used.
type Mode int

const (
	ResidueRMSF Mode = iota
	ResidueRMSD
	AtomRMSF
	AtomRMSD
)

var modeNames = [...]string{"residue-rmsf", "residue-rmsd", "atom-rmsf", "atom-rmsd"}

func (M Mode) String() string {
	if M < 0 || int(M) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(M))
	}
	return modeNames[M]
}

//ParseMode returns the mode named s. Case is ignored, and underscores
//are taken as hyphens, so "RESIDUE_RMSF" is the same as "residue-rmsf".
func ParseMode(s string) (Mode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, v := range modeNames {
		if v == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("gofluct/outline: unknown mode %q, use one of %s", s, strings.Join(modeNames[:], ", "))
}

//Boundary selects the range the schemes are built on.
type Boundary int

const (
	Absolute Boundary = iota //the trajectory-wide range
	Relative                 //each entity's own range
)

var boundaryNames = [...]string{"absolute", "relative"}

func (B Boundary) String() string {
	if B < 0 || int(B) >= len(boundaryNames) {
		return fmt.Sprintf("Boundary(%d)", int(B))
	}
	return boundaryNames[B]
}

//ParseBoundary returns the boundary named s, case ignored.
func ParseBoundary(s string) (Boundary, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i, v := range boundaryNames {
		if v == n {
			return Boundary(i), nil
		}
	}
	return 0, fmt.Errorf("gofluct/outline: unknown boundary %q, use absolute or relative", s)
}

//Level is the kind of entity colored.
type Level int

const (
	ResidueLevel Level = iota
	AtomLevel
)

func (L Level) String() string {
	if L == AtomLevel {
		return "atom"
	}
	return "residue"
}

//Statistic is the value resolved for each entity.
type Statistic int

const (
	RMSF Statistic = iota //frame-invariant
	RMSD                  //at the selected frame
)

func (S Statistic) String() string {
	if S == RMSD {
		return "RMSD"
	}
	return "RMSF"
}

//Source is where the range of a scheme comes from.
type Source int

const (
	GlobalRange Source = iota //one scheme for all entities
	EntityRange               //one scheme per entity, from its MinRMSD and MaxRMSD
)

//Rule is what a (Mode, Boundary) pair means.
type Rule struct {
	Level     Level
	Statistic Statistic
	Source    Source
}

//RMSF is a single value per entity, so there is no per-entity range to use and
//both boundaries give the global range.
var rules = [4][2]Rule{
	ResidueRMSF: {Absolute: {ResidueLevel, RMSF, GlobalRange}, Relative: {ResidueLevel, RMSF, GlobalRange}},
	ResidueRMSD: {Absolute: {ResidueLevel, RMSD, GlobalRange}, Relative: {ResidueLevel, RMSD, EntityRange}},
	AtomRMSF:    {Absolute: {AtomLevel, RMSF, GlobalRange}, Relative: {AtomLevel, RMSF, GlobalRange}},
	AtomRMSD:    {Absolute: {AtomLevel, RMSD, GlobalRange}, Relative: {AtomLevel, RMSD, EntityRange}},
}

//RuleFor returns the rule for the given mode and boundary.
func RuleFor(m Mode, b Boundary) (Rule, error) {
	if m < 0 || int(m) >= len(rules) {
		return Rule{}, fmt.Errorf("gofluct/outline: invalid mode %d", int(m))
	}
	if b < 0 || int(b) >= len(rules[m]) {
		return Rule{}, fmt.Errorf("gofluct/outline: invalid boundary %d", int(b))
	}
	return rules[m][b], nil
}
