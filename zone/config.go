package zone

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Tunable parameter names. Every numeric knob of the zone engine and the
// recovery curve resolves through Tunables so experiments can override them
// without a rebuild.
const (
	ParamGuardedRadius    = "guarded_radius"
	ParamPokerFaceRadius  = "poker_face_radius"
	ParamCommandingRadius = "commanding_radius"
	ParamAggroRadius      = "aggro_radius"

	ParamTiltedThreshold         = "tilted_threshold"
	ParamOverconfidentThreshold  = "overconfident_threshold"
	ParamTimidThreshold          = "timid_threshold"
	ParamShakenCornerThreshold   = "shaken_corner_threshold"
	ParamOverheatedConfThreshold = "overheated_confidence_threshold"
	ParamOverheatedCompThreshold = "overheated_composure_threshold"
	ParamDetachedConfThreshold   = "detached_confidence_threshold"
	ParamDetachedCompThreshold   = "detached_composure_threshold"

	ParamLowEnergyThreshold  = "low_energy_threshold"
	ParamHighEnergyThreshold = "high_energy_threshold"

	ParamGravityStrength = "gravity_strength"
	ParamRecoveryFloor   = "recovery_floor"
	ParamRecoveryRange   = "recovery_range"
)

func defaultTunables() map[string]float64 {
	return map[string]float64{
		ParamGuardedRadius:    0.16,
		ParamPokerFaceRadius:  0.16,
		ParamCommandingRadius: 0.18,
		ParamAggroRadius:      0.16,

		ParamTiltedThreshold:         0.30,
		ParamOverconfidentThreshold:  0.78,
		ParamTimidThreshold:          0.25,
		ParamShakenCornerThreshold:   0.35,
		ParamOverheatedConfThreshold: 0.65,
		ParamOverheatedCompThreshold: 0.35,
		ParamDetachedConfThreshold:   0.30,
		ParamDetachedCompThreshold:   0.80,

		ParamLowEnergyThreshold:  0.35,
		ParamHighEnergyThreshold: 0.65,

		ParamGravityStrength: 0.02,
		ParamRecoveryFloor:   0.05,
		ParamRecoveryRange:   0.25,
	}
}

// Tunables resolves zone engine parameters. Resolution order is runtime
// override, then loaded config file, then hardcoded default. An unknown
// parameter name is a configuration mismatch and is never silently defaulted.
type Tunables struct {
	defaults   map[string]float64
	fileValues map[string]float64
	overrides  map[string]float64
}

// NewTunables creates a Tunables with hardcoded defaults only.
func NewTunables() *Tunables {
	return &Tunables{
		defaults:   defaultTunables(),
		fileValues: make(map[string]float64),
		overrides:  make(map[string]float64),
	}
}

// NewTunablesFromFile creates a Tunables and loads file values from a YAML
// file containing a flat name -> value mapping.
func NewTunablesFromFile(tunablesFile string) (*Tunables, error) {
	t := NewTunables()
	if err := t.LoadFile(tunablesFile); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile replaces the file-value layer from a YAML file.
func (t *Tunables) LoadFile(tunablesFile string) error {
	bytes, err := ioutil.ReadFile(tunablesFile)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Error reading tunables file [%s]", tunablesFile))
	}

	var data map[string]float64
	err = yaml.Unmarshal(bytes, &data)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Error parsing tunables YAML file [%s]", tunablesFile))
	}

	for name := range data {
		if _, ok := t.defaults[name]; !ok {
			return fmt.Errorf("Unknown tunable parameter [%s] in file [%s]", name, tunablesFile)
		}
	}
	t.fileValues = data
	return nil
}

// SetOverride sets a runtime override for a known parameter.
func (t *Tunables) SetOverride(name string, value float64) error {
	if _, ok := t.defaults[name]; !ok {
		return fmt.Errorf("Unknown tunable parameter [%s]", name)
	}
	t.overrides[name] = value
	return nil
}

// ResetOverrides clears all runtime overrides. Used for test isolation.
func (t *Tunables) ResetOverrides() {
	t.overrides = make(map[string]float64)
}

// Get resolves a parameter value. Unknown names are a fatal lookup error.
func (t *Tunables) Get(name string) (float64, error) {
	if v, ok := t.overrides[name]; ok {
		return v, nil
	}
	if v, ok := t.fileValues[name]; ok {
		return v, nil
	}
	if v, ok := t.defaults[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("Unknown tunable parameter [%s]", name)
}

// MustGet resolves a parameter value and panics on an unknown name. Callers
// use compile-time Param* constants, so a panic here means a deployment
// mismatch, not a recoverable condition.
func (t *Tunables) MustGet(name string) float64 {
	v, err := t.Get(name)
	if err != nil {
		panic(err.Error())
	}
	return v
}
