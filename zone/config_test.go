package zone

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestTunablesResolutionOrder(t *testing.T) {
	tunablesFile := filepath.Join(t.TempDir(), "tunables.yaml")
	err := ioutil.WriteFile(tunablesFile, []byte("gravity_strength: 0.05\n"), 0644)
	if err != nil {
		t.Fatalf("Could not write tunables file: %s", err)
	}

	tunables, err := NewTunablesFromFile(tunablesFile)
	if err != nil {
		t.Fatalf("NewTunablesFromFile returned error [%s]", err)
	}

	// File value beats default.
	if v := tunables.MustGet(ParamGravityStrength); v != 0.05 {
		t.Errorf("File value not used: %f", v)
	}
	// Unlisted parameter falls through to default.
	if v := tunables.MustGet(ParamTiltedThreshold); v != 0.30 {
		t.Errorf("Default value not used: %f", v)
	}

	// Override beats file.
	if err := tunables.SetOverride(ParamGravityStrength, 0.09); err != nil {
		t.Fatalf("SetOverride returned error [%s]", err)
	}
	if v := tunables.MustGet(ParamGravityStrength); v != 0.09 {
		t.Errorf("Override value not used: %f", v)
	}

	// Reset restores the file value.
	tunables.ResetOverrides()
	if v := tunables.MustGet(ParamGravityStrength); v != 0.05 {
		t.Errorf("ResetOverrides did not restore file value: %f", v)
	}
}

func TestTunablesUnknownParameter(t *testing.T) {
	tunables := NewTunables()

	if _, err := tunables.Get("no_such_param"); err == nil {
		t.Error("Unknown parameter lookup did not return an error")
	}
	if err := tunables.SetOverride("no_such_param", 1); err == nil {
		t.Error("Unknown parameter override did not return an error")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on unknown parameter did not panic")
		}
	}()
	tunables.MustGet("no_such_param")
}

func TestTunablesUnknownParameterInFile(t *testing.T) {
	tunablesFile := filepath.Join(t.TempDir(), "tunables.yaml")
	err := ioutil.WriteFile(tunablesFile, []byte("mystery_knob: 0.5\n"), 0644)
	if err != nil {
		t.Fatalf("Could not write tunables file: %s", err)
	}
	if _, err := NewTunablesFromFile(tunablesFile); err == nil {
		t.Error("Unknown parameter in file did not fail the load")
	}
}
