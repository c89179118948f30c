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

package main

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/OpenGazeProject/eye-reporter/camera"
	"github.com/OpenGazeProject/eye-reporter/canbus"
	"github.com/OpenGazeProject/eye-reporter/detect"
	"github.com/OpenGazeProject/eye-reporter/protocol"
)

type Config struct {
	CAN            canbus.Config          `yaml:"can"`
	Camera         camera.Config          `yaml:"camera"`
	Cascade        camera.CascadeConfig   `yaml:"cascade"`
	Detection      detect.DetectionConfig `yaml:"detection"`
	Report         protocol.Config        `yaml:"report"`
	IlluminatorPin string                 `yaml:"illuminator-pin"`
}

func defaultConfig() Config {
	return Config{
		CAN:       canbus.DefaultConfig(),
		Camera:    camera.DefaultConfig(),
		Cascade:   camera.DefaultCascadeConfig(),
		Detection: detect.DefaultDetectionConfig(),
		Report:    protocol.DefaultConfig(),
	}
}

func (conf *Config) Validate() error {
	if err := conf.CAN.Validate(); err != nil {
		return err
	}
	if err := conf.Camera.Validate(); err != nil {
		return err
	}
	if err := conf.Cascade.Validate(); err != nil {
		return err
	}
	if err := conf.Detection.Validate(); err != nil {
		return err
	}
	return conf.Report.Validate()
}

func ParseConfigFile(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig()
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
