package cli

import (
	"context"
	"io"
	"os"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/chemjson"
)

// readTrajectory reads a (possibly compressed) JSON trajectory.
func readTrajectory(path string) (*fluct.Trajectory, error) {
	r, err := chemjson.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return chemjson.ReadTrajectory(r)
}

// loadAnalysis reads a saved analysis, or analyzes the trajectory at path if fromTrajectory is set.
func loadAnalysis(ctx context.Context, path string, fromTrajectory bool) (*fluct.Analysis, error) {
	logger := loggerFromContext(ctx)
	if fromTrajectory {
		T, err := readTrajectory(path)
		if err != nil {
			return nil, err
		}
		return fluct.Analyze(T, configFromContext(ctx).Options(logger))
	}
	r, err := chemjson.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	A, err := chemjson.ReadAnalysis(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("analysis loaded", "file", path, "frames", A.Frames, "residues", len(A.Residues), "atoms", len(A.Atoms))
	return A, nil
}

// writeOutput calls write with the file at path, or with stdout if path is "-" or empty.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	w, err := chemjson.Create(path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		os.Remove(path)
		return err
	}
	return w.Close()
}
