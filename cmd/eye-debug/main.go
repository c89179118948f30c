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

// eye-debug shows the live camera feed with face and eye detection
// overlaid so cascade and filter settings can be tuned without a CAN
// bus attached. Press Esc to exit.
package main

import (
	"log"

	arg "github.com/alexflint/go-arg"
	"gocv.io/x/gocv"

	"github.com/OpenGazeProject/eye-reporter/camera"
	"github.com/OpenGazeProject/eye-reporter/detect"
)

const escKey = 27

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/eye-reporter.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()
	log.SetFlags(0)

	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	cascades, err := camera.LoadCascades(conf.Cascade)
	if err != nil {
		return err
	}
	defer cascades.Close()

	src, err := camera.Open(conf.Camera)
	if err != nil {
		return err
	}
	defer src.Close()

	window := gocv.NewWindow("Eye Position Detection")
	defer window.Close()

	log.Print("press Esc to exit")
	for {
		frame, err := src.Grab()
		if err != nil {
			return err
		}

		cf := frame.(*camera.Frame)
		annotate(cf, cascades, &conf.Detection)

		window.IMShow(cf.Image())
		key := window.WaitKey(1)
		frame.Close()
		if key == escKey {
			return nil
		}
	}
}

// annotate runs one detection pass over the frame and draws what it
// found: every face, and the eyes/midpoint of the first face that
// resolves.
func annotate(frame *camera.Frame, cascades *camera.Cascades, conf *detect.DetectionConfig) {
	resolved := false
	for _, face := range cascades.DetectFaces(frame) {
		camera.DrawFace(frame, face)
		if resolved {
			continue
		}

		roi := detect.EyeRegion(face)
		minSize, maxSize := detect.EyeSizeBounds(face)
		eyes := cascades.DetectEyes(frame, roi, minSize, maxSize)
		if pair, ok := detect.ResolveEyes(conf, face, roi.Min.Y, eyes); ok {
			camera.DrawEyes(frame, pair)
			log.Printf("eye midpoint: (%d, %d)", pair.Midpoint.X, pair.Midpoint.Y)
			resolved = true
		}
	}
}
