// Package reduceconfig loads a named reduction profile — the four
// configuration axes from spec.md §6 — from a small TOML file, the way the
// teacher uses BurntSushi/toml for its own declarative configuration
// surfaces.
package reduceconfig

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/reduceengine"
)

// Profile is the on-disk representation of a reduction profile.
type Profile struct {
	ImportanceFloor   string `toml:"importance_floor"`
	PreparedDAGMode   bool   `toml:"prepared_dag_mode"`
	CompleteReduction bool   `toml:"complete_reduction"`
	PassBudget        int    `toml:"pass_budget"`
}

// Default is the profile used when no file is given: complete reduction,
// every importance level, prepared-DAG mode off.
var Default = Profile{
	ImportanceFloor:   "expensive",
	PreparedDAGMode:   false,
	CompleteReduction: true,
	PassBudget:        10000,
}

// Load reads and parses a TOML profile from path on fs.
func Load(fs afero.Fs, path string) (Profile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading reduction profile %s: %w", path, err)
	}
	profile := Default
	if _, err := toml.Decode(string(data), &profile); err != nil {
		return Profile{}, fmt.Errorf("parsing reduction profile %s: %w", path, err)
	}
	return profile, nil
}

// Settings converts the profile into reduceengine.Settings, validating
// ImportanceFloor against the three named levels.
func (p Profile) Settings() (reduceengine.Settings, error) {
	floor, err := parseImportance(p.ImportanceFloor)
	if err != nil {
		return reduceengine.Settings{}, err
	}
	return reduceengine.Settings{
		MinimumImportance: floor,
		PreparedDAG:       p.PreparedDAGMode,
		CompleteReduction: p.CompleteReduction,
		PassBudget:        p.PassBudget,
	}, nil
}

func parseImportance(s string) (dagnode.Importance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "essential":
		return dagnode.Essential, nil
	case "normal":
		return dagnode.Normal, nil
	case "expensive", "":
		return dagnode.Expensive, nil
	default:
		return 0, fmt.Errorf("unknown importance_floor %q (want essential, normal, or expensive)", s)
	}
}
