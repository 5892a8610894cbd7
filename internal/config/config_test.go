package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if len(cfg.Track) == 0 {
		t.Error("default config should carry a track")
	}
	if err := cfg.Vehicle.Validate(); err != nil {
		t.Errorf("default vehicle invalid: %v", err)
	}
	if _, err := cfg.BuildTrack(); err != nil {
		t.Errorf("default track invalid: %v", err)
	}
}

func TestSweepExpandRange(t *testing.T) {
	s := SweepConfig{Min: 2.5, Max: 4.5, Step: 0.25}
	values, err := s.Expand()
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 9 {
		t.Fatalf("got %d values, want 9", len(values))
	}
	if values[0] != 2.5 {
		t.Errorf("first value = %g, want 2.5", values[0])
	}
	if math.Abs(values[8]-4.5) > 1e-9 {
		t.Errorf("last value = %g, want 4.5", values[8])
	}
}

func TestSweepExpandExplicitValues(t *testing.T) {
	s := SweepConfig{Values: []float64{3.0, 2.0, 1.0}, Min: 0, Max: 10, Step: 1}
	values, err := s.Expand()
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 3 || values[0] != 3.0 || values[2] != 1.0 {
		t.Errorf("explicit values not preserved in order: %v", values)
	}
}

func TestSweepExpandErrors(t *testing.T) {
	if _, err := (SweepConfig{Min: 1, Max: 2, Step: 0}).Expand(); err == nil {
		t.Error("expected error for zero step")
	}
	if _, err := (SweepConfig{Min: 5, Max: 1, Step: 1}).Expand(); err == nil {
		t.Error("expected error for max below min")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Dt = 0.005
	cfg.Vehicle.DownforceCoeff = 4.2
	cfg.Sweep.Param = "drag_coeff"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Dt != 0.005 {
		t.Errorf("Dt = %g, want 0.005", loaded.Dt)
	}
	if loaded.Vehicle.DownforceCoeff != 4.2 {
		t.Errorf("DownforceCoeff = %g, want 4.2", loaded.Vehicle.DownforceCoeff)
	}
	if loaded.Sweep.Param != "drag_coeff" {
		t.Errorf("Sweep.Param = %q, want drag_coeff", loaded.Sweep.Param)
	}
	if len(loaded.Track) != len(cfg.Track) {
		t.Errorf("track length = %d, want %d", len(loaded.Track), len(cfg.Track))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("monaco")
	if cfg == nil {
		t.Fatal("expected monaco preset")
	}
	if len(cfg.Track) != 8 {
		t.Errorf("monaco track has %d segments, want 8", len(cfg.Track))
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	if len(ListPresets()) < 2 {
		t.Error("expected at least two presets")
	}
}
