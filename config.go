package popup

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// TransitionConfig configures a TransitioningDelegate.
//
// Durations decode from strings such as "250ms"; Position decodes from
// "top", "bottom" or "center". DimmingView cannot be expressed in a config
// file and is left for code to set; use NoDimmingView to present without one.
type TransitionConfig struct {
	PresentDuration time.Duration      `mapstructure:"present_duration" yaml:"present_duration"`
	DismissDuration time.Duration      `mapstructure:"dismiss_duration" yaml:"dismiss_duration"`
	Position        Position           `mapstructure:"position" yaml:"position"`
	Insets          EdgeInsets         `mapstructure:"insets" yaml:"insets"`
	DimmingView     DimmingViewFactory `mapstructure:"-" yaml:"-"`
}

// DefaultTransitionConfig returns a bottom sheet with default durations.
func DefaultTransitionConfig() TransitionConfig {
	return TransitionConfig{
		PresentDuration: DefaultPresentDuration,
		DismissDuration: DefaultDismissDuration,
		Position:        PositionBottom,
		DimmingView:     DefaultDimmingView,
	}
}

// DecodeTransitionConfig decodes a generic map (from YAML, JSON or flags)
// over DefaultTransitionConfig. Unknown keys are an error.
func DecodeTransitionConfig(input map[string]any) (TransitionConfig, error) {
	cfg := DefaultTransitionConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return TransitionConfig{}, fmt.Errorf("transition config: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return TransitionConfig{}, fmt.Errorf("transition config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TransitionConfig{}, err
	}
	return cfg, nil
}

// LoadTransitionConfig parses a YAML (or JSON) document into a
// TransitionConfig.
func LoadTransitionConfig(data []byte) (TransitionConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return TransitionConfig{}, fmt.Errorf("transition config: %w", err)
	}
	if raw == nil {
		return DefaultTransitionConfig(), nil
	}
	return DecodeTransitionConfig(raw)
}

// Validate reports configuration that NewTransitioningDelegate would reject.
func (c TransitionConfig) Validate() error {
	if !c.Position.valid() {
		return fmt.Errorf("transition config: invalid position %d", uint8(c.Position))
	}
	if c.PresentDuration < 0 {
		return fmt.Errorf("transition config: negative present_duration %s", c.PresentDuration)
	}
	if c.DismissDuration < 0 {
		return fmt.Errorf("transition config: negative dismiss_duration %s", c.DismissDuration)
	}
	return nil
}
