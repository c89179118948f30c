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
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/OpenGazeProject/eye-reporter/detect"
)

// LoadCascades loads the face and eye Haar classifiers. Both must load
// for the node to be considered ready.
func LoadCascades(conf CascadeConfig) (*Cascades, error) {
	faces := gocv.NewCascadeClassifier()
	if !faces.Load(conf.FaceCascade) {
		faces.Close()
		return nil, fmt.Errorf("could not load face cascade %s", conf.FaceCascade)
	}

	eyes := gocv.NewCascadeClassifier()
	if !eyes.Load(conf.EyeCascade) {
		faces.Close()
		eyes.Close()
		return nil, fmt.Errorf("could not load eye cascade %s", conf.EyeCascade)
	}

	return &Cascades{conf: conf, faces: faces, eyes: eyes}, nil
}

// Cascades implements detect.Detector with OpenCV Haar cascades. It
// only understands frames produced by this package's Capture.
type Cascades struct {
	conf  CascadeConfig
	faces gocv.CascadeClassifier
	eyes  gocv.CascadeClassifier
}

func (c *Cascades) Close() {
	c.faces.Close()
	c.eyes.Close()
}

func (c *Cascades) DetectFaces(frame detect.Frame) []image.Rectangle {
	f, ok := frame.(*Frame)
	if !ok {
		return nil
	}
	minSize := image.Pt(c.conf.FaceMinSize, c.conf.FaceMinSize)
	return c.faces.DetectMultiScaleWithParams(
		f.gray, c.conf.FaceScaleFactor, c.conf.FaceMinNeighbors, 0,
		minSize, image.Point{})
}

func (c *Cascades) DetectEyes(frame detect.Frame, roi image.Rectangle, minSize, maxSize image.Point) []image.Rectangle {
	f, ok := frame.(*Frame)
	if !ok {
		return nil
	}
	region := f.gray.Region(roi)
	defer region.Close()
	return c.eyes.DetectMultiScaleWithParams(
		region, c.conf.EyeScaleFactor, c.conf.EyeMinNeighbors, 0,
		minSize, maxSize)
}
