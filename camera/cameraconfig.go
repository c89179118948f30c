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

package camera

import (
	"errors"
	"runtime"
)

const haarDir = "/usr/share/opencv4/haarcascades/"

type Config struct {
	// DeviceIDs is tried in order until a device opens. On macOS the
	// built-in camera is often not index 0.
	DeviceIDs      []int `yaml:"device-ids"`
	FlipHorizontal bool  `yaml:"flip-horizontal"`
}

func DefaultConfig() Config {
	conf := Config{
		DeviceIDs:      []int{0},
		FlipHorizontal: true,
	}
	if runtime.GOOS == "darwin" {
		conf.DeviceIDs = []int{1, 0, 2}
	}
	return conf
}

func (conf *Config) Validate() error {
	if len(conf.DeviceIDs) == 0 {
		return errors.New("device-ids should list at least one capture device")
	}
	return nil
}

type CascadeConfig struct {
	FaceCascade      string  `yaml:"face-cascade"`
	EyeCascade       string  `yaml:"eye-cascade"`
	FaceScaleFactor  float64 `yaml:"face-scale-factor"`
	FaceMinNeighbors int     `yaml:"face-min-neighbors"`
	FaceMinSize      int     `yaml:"face-min-size"`
	EyeScaleFactor   float64 `yaml:"eye-scale-factor"`
	EyeMinNeighbors  int     `yaml:"eye-min-neighbors"`
}

func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		FaceCascade:      haarDir + "haarcascade_frontalface_default.xml",
		EyeCascade:       haarDir + "haarcascade_eye_tree_eyeglasses.xml",
		FaceScaleFactor:  1.1,
		FaceMinNeighbors: 5,
		FaceMinSize:      30,
		EyeScaleFactor:   1.1,
		EyeMinNeighbors:  6,
	}
}

func (conf *CascadeConfig) Validate() error {
	if conf.FaceCascade == "" || conf.EyeCascade == "" {
		return errors.New("face-cascade and eye-cascade paths should be set")
	}
	if conf.FaceScaleFactor <= 1 || conf.EyeScaleFactor <= 1 {
		return errors.New("cascade scale factors should be greater than 1")
	}
	if conf.FaceMinNeighbors < 1 || conf.EyeMinNeighbors < 1 {
		return errors.New("cascade min-neighbors should be at least 1")
	}
	if conf.FaceMinSize < 1 {
		return errors.New("face-min-size should be at least 1")
	}
	return nil
}
