package reduceconfig_test

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/reduceconfig"
)

func TestLoadParsesProfile(t *testing.T) {
	fs := afero.NewMemMapFs()
	const toml = `
importance_floor = "normal"
prepared_dag_mode = true
complete_reduction = false
pass_budget = 50
`
	if err := afero.WriteFile(fs, "profile.toml", []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	profile, err := reduceconfig.Load(fs, "profile.toml")
	if err != nil {
		t.Fatal(err)
	}
	if profile.ImportanceFloor != "normal" || !profile.PreparedDAGMode || profile.CompleteReduction || profile.PassBudget != 50 {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	settings, err := profile.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.MinimumImportance != dagnode.Normal {
		t.Errorf("want Normal, got %s", settings.MinimumImportance)
	}
}

func TestLoadMissingFileFailsCleanly(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := reduceconfig.Load(fs, "missing.toml"); err == nil {
		t.Fatal("expected an error for a missing profile file")
	}
}

func TestDefaultProfileUsesExpensiveFloor(t *testing.T) {
	settings, err := reduceconfig.Default.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.MinimumImportance != dagnode.Expensive {
		t.Errorf("want Expensive, got %s", settings.MinimumImportance)
	}
}

func TestSettingsRejectsUnknownImportance(t *testing.T) {
	p := reduceconfig.Default
	p.ImportanceFloor = "bogus"
	if _, err := p.Settings(); err == nil {
		t.Fatal("expected an error for an unrecognized importance_floor")
	}
}
