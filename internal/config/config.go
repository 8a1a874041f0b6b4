package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/easing"
	"github.com/san-kum/glide/internal/sim"
)

var ErrInvalidConfig = errors.New("config: invalid scene")

const (
	DefaultLength   = 3.0
	DefaultFPS      = 60
	DefaultDuration = 0.5
	DefaultEasing   = "sine-out"
	DefaultMode     = "start"
	DefaultTopic    = "glide/frames"
	DefaultClientID = "glide"
)

// Config is a scene: one numeric output and the targets fed to it.
// Times and durations are in seconds.
type Config struct {
	Name     string     `yaml:"name"`
	Initial  float64    `yaml:"initial"`
	Length   float64    `yaml:"length"`
	FPS      int        `yaml:"fps"`
	Duration float64    `yaml:"duration"`
	Easing   string     `yaml:"easing"`
	Mode     string     `yaml:"mode"`
	Theme    string     `yaml:"theme,omitempty"`
	Steps    []Step     `yaml:"steps"`
	MQTT     MQTTConfig `yaml:"mqtt"`
}

// Step overrides the scene defaults for one target when its fields are set.
type Step struct {
	At       float64  `yaml:"at"`
	Target   float64  `yaml:"target"`
	Duration *float64 `yaml:"duration,omitempty"`
	Easing   string   `yaml:"easing,omitempty"`
	Mode     string   `yaml:"mode,omitempty"`
}

type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	QoS      byte   `yaml:"qos"`
	Retained bool   `yaml:"retained"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "scene",
		Length:   DefaultLength,
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
		Easing:   DefaultEasing,
		Mode:     DefaultMode,
		MQTT: MQTTConfig{
			Broker:   "tcp://localhost:1883",
			ClientID: DefaultClientID,
			Topic:    DefaultTopic,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Steps = make([]Step, len(c.Steps))
	for i, st := range c.Steps {
		out.Steps[i] = st
		if st.Duration != nil {
			d := *st.Duration
			out.Steps[i].Duration = &d
		}
	}
	return &out
}

// Scenario resolves names and defaults into a runnable scenario.
func (c *Config) Scenario() (sim.Scenario, error) {
	if c.FPS <= 0 {
		return sim.Scenario{}, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Length <= 0 {
		return sim.Scenario{}, fmt.Errorf("%w: length must be positive, got %g", ErrInvalidConfig, c.Length)
	}

	sc := sim.Scenario{
		Name:          c.Name,
		Initial:       c.Initial,
		Length:        seconds(c.Length),
		FrameInterval: time.Second / time.Duration(c.FPS),
		Steps:         make([]sim.Step, 0, len(c.Steps)),
	}
	for i, st := range c.Steps {
		target, err := c.target(st)
		if err != nil {
			return sim.Scenario{}, fmt.Errorf("%w: step %d: %w", ErrInvalidConfig, i, err)
		}
		sc.Steps = append(sc.Steps, sim.Step{At: seconds(st.At), Target: target})
	}
	if err := sc.Validate(); err != nil {
		return sim.Scenario{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return sc, nil
}

func (c *Config) target(st Step) (anim.Target[float64], error) {
	easeName := firstNonEmpty(st.Easing, c.Easing, DefaultEasing)
	fn, err := easing.Lookup(easeName)
	if err != nil {
		return anim.Target[float64]{}, err
	}
	mode, err := anim.ParseMode(firstNonEmpty(st.Mode, c.Mode, DefaultMode))
	if err != nil {
		return anim.Target[float64]{}, err
	}
	dur := c.Duration
	if st.Duration != nil {
		dur = *st.Duration
	}
	return anim.To(st.Target,
		anim.WithDuration(seconds(dur)),
		anim.WithEasing(fn),
		anim.WithMode(mode)), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
