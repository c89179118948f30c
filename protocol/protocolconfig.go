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

package protocol

import "errors"

type Config struct {
	// Sentinel is reported for both coordinates when no eyes were
	// detected. Valid readings are 0-100, so any value outside that
	// range is unambiguous on the wire.
	Sentinel int32 `yaml:"sentinel"`
}

func DefaultConfig() Config {
	return Config{Sentinel: -1}
}

func (conf *Config) Validate() error {
	if conf.Sentinel >= 0 && conf.Sentinel <= 100 {
		return errors.New("sentinel should be outside the valid range 0 - 100")
	}
	return nil
}
