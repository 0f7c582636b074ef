/*
 * options.go, part of gofluct.
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

package fluct

import (
	"runtime"

	"github.com/charmbracelet/log"
)

//Options contains the options for the Analyze function.
type Options struct {
	cpus      int
	skipSmall bool
	logger    *log.Logger
}

//DefaultOptions returns options that fit all the residues using all
//the available CPUs, reject residues with fewer than 3 atoms and log
//to the default logger.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = runtime.NumCPU()
	r.skipSmall = false
	r.logger = log.Default()
	return r
}

//Cpus returns the number of goroutines used to fit residues,
//and sets it to a new value, if a positive one is given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	if O.cpus <= 0 {
		O.cpus = 1
	}
	return O.cpus
}

//SkipSmallResidues returns whether residues with too few atoms to be superimposed
//are dropped (with a warning) instead of making the analysis fail, and sets it to a new value, if given.
func (O *Options) SkipSmallResidues(skip ...bool) bool {
	if len(skip) > 0 {
		O.skipSmall = skip[0]
	}
	return O.skipSmall
}

//Logger returns the logger used to report progress,
//and sets it to a new value, if a non-nil one is given.
func (O *Options) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	if O.logger == nil {
		O.logger = log.Default()
	}
	return O.logger
}
