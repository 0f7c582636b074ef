/*
 * doc.go, part of gofluct.
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

/*Package fluct quantifies the structural fluctuation of the residues and atoms of a molecular
trajectory.

Every residue of every frame is centered and superimposed (Kabsch) on the residue's conformation
in the first frame. The mean squared deviation after superposition (called RMSD throughout
the library, even though it is never square-rooted) gives, for each residue, a per-frame
series, its minimum and maximum (first frame excluded) and its mean over the whole
trajectory (the RMSF). The rotations obtained for the residues are then applied to each
of their atoms, which gives, for each atom, a per-frame deviation vector and the same
summaries, computed from the squared norms of the vectors.

	**Packages**

    v3: Nx3 coordinate matrices over gonum.

    align: centering, Kabsch superposition and deviations.

    scheme: color palettes, and the quantization of values into colored, half-open bins.

    outline: colors for every residue or atom of an analysis, according to a display mode
	and a boundary policy.

    histo: histograms with fixed dividers.

    chemjson: JSON I/O for trajectories, analyses and outlines.

    chemplot: plots of deviation series and RMSF profiles.

A typical use:

	traj, err := chemjson.ReadTrajectory(f)
	if err != nil {
		return err
	}
	an, err := fluct.Analyze(traj, fluct.DefaultOptions())

*/
package fluct
