// Package config reads the gofluct configuration file.
//
// The file is TOML, with an [analysis] table for the superposition and an
// [outline] table for the coloring:
//
//	[analysis]
//	cpus = 4
//	skip_small_residues = true
//
//	[outline]
//	mode = "residue-rmsd"
//	boundary = "relative"
//	palette = "BrBG"
//	size = 7
//	filter = 2
//	frame = 10
//
// Missing keys keep their default values. Unknown keys are an error.
package config

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/outline"
)

// Analysis holds the settings of the superposition pass.
type Analysis struct {
	Cpus              int  `toml:"cpus"`
	SkipSmallResidues bool `toml:"skip_small_residues"`
}

// Outline holds the coloring settings. Mode and Boundary are the names
// accepted by outline.ParseMode and outline.ParseBoundary.
type Outline struct {
	Mode     string `toml:"mode"`
	Boundary string `toml:"boundary"`
	Palette  string `toml:"palette"`
	Size     int    `toml:"size"`
	Filter   int    `toml:"filter"`
	Frame    int    `toml:"frame"`
}

// Config is the complete configuration.
type Config struct {
	Analysis Analysis `toml:"analysis"`
	Outline  Outline  `toml:"outline"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	oc := outline.DefaultConfig()
	return Config{
		Analysis: Analysis{Cpus: runtime.NumCPU()},
		Outline: Outline{
			Mode:     oc.Mode.String(),
			Boundary: oc.Boundary.String(),
			Palette:  oc.Palette,
			Size:     oc.Size,
			Filter:   oc.Filter,
			Frame:    oc.Frame,
		},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("gofluct/config: %w", err)
	}
	return cfg, checkUndecoded(md)
}

// Read is like Load, reading from r.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("gofluct/config: %w", err)
	}
	return cfg, checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	und := md.Undecoded()
	if len(und) == 0 {
		return nil
	}
	keys := make([]string, len(und))
	for i, k := range und {
		keys[i] = k.String()
	}
	return fmt.Errorf("gofluct/config: unknown keys: %s", strings.Join(keys, ", "))
}

// Write encodes cfg as TOML to w.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Options returns the analysis options, logging to logger.
func (c Config) Options(logger *log.Logger) *fluct.Options {
	o := fluct.DefaultOptions()
	o.Cpus(c.Analysis.Cpus)
	o.SkipSmallResidues(c.Analysis.SkipSmallResidues)
	o.Logger(logger)
	return o
}

// OutlineConfig parses the outline settings.
func (c Config) OutlineConfig() (outline.Config, error) {
	m, err := outline.ParseMode(c.Outline.Mode)
	if err != nil {
		return outline.Config{}, err
	}
	b, err := outline.ParseBoundary(c.Outline.Boundary)
	if err != nil {
		return outline.Config{}, err
	}
	return outline.Config{
		Mode:     m,
		Boundary: b,
		Palette:  c.Outline.Palette,
		Size:     c.Outline.Size,
		Filter:   c.Outline.Filter,
		Frame:    c.Outline.Frame,
	}, nil
}
