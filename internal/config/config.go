// Package config loads the run parameters enumerated in §6 from a YAML
// file, following the teacher's reinforcement.FromYaml pattern: viper reads
// the file, then the relevant section is re-marshalled through yaml.v3 into
// a concrete Go struct so the rest of the core never touches viper's
// loosely-typed map representation.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/orchestrator"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings holds every configuration option named in §6, as written in the
// YAML file (plain seconds, not time.Duration) so the zero value of an
// unset field is meaningful and the YAML stays human-editable.
type Settings struct {
	CoverageLimit             float64 `yaml:"coverage_limit"`
	TimeLimitSeconds          float64 `yaml:"time_limit_seconds"`
	RobotSpeed                float64 `yaml:"robot_speed"`
	MotionChunkPacingSeconds  float64 `yaml:"motion_chunk_pacing_seconds"`
	SensorRequestDelaySeconds float64 `yaml:"sensor_request_delay_seconds"`
	InboundPollIntervalSecs   float64 `yaml:"inbound_poll_interval_seconds"`
	LoopEscapeSignatureLength int     `yaml:"loop_escape_signature_length"`
}

// Defaults returns the settings in effect when a YAML file omits a field,
// per the defaults enumerated in §6.
func Defaults() Settings {
	return Settings{
		CoverageLimit:             1.0,
		TimeLimitSeconds:          360,
		RobotSpeed:                1.0,
		MotionChunkPacingSeconds:  7,
		SensorRequestDelaySeconds: 0.2,
		InboundPollIntervalSecs:   0.1,
		LoopEscapeSignatureLength: 6,
	}
}

// FromYaml loads settings from path, falling back to Defaults for any field
// the file omits. Viper does the file IO and format
// sniffing; the decoded map is re-marshalled and unmarshalled through
// yaml.v3 into Settings, same two-hop shape as the teacher's FromYaml.
func FromYaml(path string) (Settings, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return Settings{}, fmt.Errorf("config: remarshal: %w", err)
	}

	settings := Defaults()
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return settings, nil
}

// TimeLimit converts the configured wall-time budget to a Duration.
func (s Settings) TimeLimit() time.Duration {
	return time.Duration(s.TimeLimitSeconds * float64(time.Second))
}

// MotionChunkPacing converts the configured inter-chunk pacing to a
// Duration.
func (s Settings) MotionChunkPacing() time.Duration {
	return time.Duration(s.MotionChunkPacingSeconds * float64(time.Second))
}

// SensorRequestDelay converts the configured post-move settle delay to a
// Duration.
func (s Settings) SensorRequestDelay() time.Duration {
	return time.Duration(s.SensorRequestDelaySeconds * float64(time.Second))
}

// InboundPollInterval converts the configured inbound-queue poll interval
// to a Duration.
func (s Settings) InboundPollInterval() time.Duration {
	return time.Duration(s.InboundPollIntervalSecs * float64(time.Second))
}

// OrchestratorConfig adapts Settings to the shape the orchestrator consumes,
// converting every *_seconds field to a time.Duration once at the boundary
// so nothing downstream repeats that arithmetic.
func (s Settings) OrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		CoverageLimit:       s.CoverageLimit,
		TimeLimit:           s.TimeLimit(),
		RobotSpeed:          s.RobotSpeed,
		MotionChunkPacing:   s.MotionChunkPacing(),
		SensorRequestDelay:  s.SensorRequestDelay(),
		InboundPollInterval: s.InboundPollInterval(),
		LoopSignatureLength: s.LoopEscapeSignatureLength,
	}
}
