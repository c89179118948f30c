// eye-reporter - report eye position on demand over CAN bus
//  Copyright (C) 2025, The OpenGaze Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package detect

import (
	"errors"
	"time"
)

// Duration wraps time.Duration so YAML configs can use "100ms" style
// strings.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type DetectionConfig struct {
	MaxAttempts       int      `yaml:"max-attempts"`
	AttemptDelay      Duration `yaml:"attempt-delay"`
	EyeAspectRatioMin float64  `yaml:"eye-aspect-ratio-min"`
	EyeAspectRatioMax float64  `yaml:"eye-aspect-ratio-max"`
}

func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		MaxAttempts:       30,
		AttemptDelay:      Duration{100 * time.Millisecond},
		EyeAspectRatioMin: 0.5,
		EyeAspectRatioMax: 2.0,
	}
}

func (conf *DetectionConfig) Validate() error {
	if conf.MaxAttempts < 1 {
		return errors.New("max-attempts should be at least 1")
	}
	if conf.AttemptDelay.Duration < 0 {
		return errors.New("attempt-delay should not be negative")
	}
	if conf.EyeAspectRatioMin <= 0 {
		return errors.New("eye-aspect-ratio-min should be positive")
	}
	if conf.EyeAspectRatioMax < conf.EyeAspectRatioMin {
		return errors.New("eye-aspect-ratio-max should not be less than eye-aspect-ratio-min")
	}
	return nil
}
