// Package demo drives a scripted walkthrough of the pawpal core: setup,
// filtering, plan generation, explanation, conflicts, and recurring-task
// completion, using a fixed scenario.
package demo

import "time"

// Speed controls the pacing between walkthrough steps.
type Speed string

const (
	SpeedFast   Speed = "fast"   // no pause, for tests and quick runs
	SpeedNormal Speed = "normal" // 1s per step
	SpeedSlow   Speed = "slow"   // 3s per step
)

// Config holds demo configuration.
type Config struct {
	Speed     Speed
	StepDelay time.Duration // computed from Speed
}

// NewConfig creates a demo configuration with the computed step delay.
func NewConfig(speed Speed) *Config {
	c := &Config{Speed: speed}
	switch speed {
	case SpeedFast:
		c.StepDelay = 0
	case SpeedSlow:
		c.StepDelay = 3 * time.Second
	default:
		c.StepDelay = time.Second
	}
	return c
}
