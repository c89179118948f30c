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
	"image"
	"log"
	"time"

	"github.com/OpenGazeProject/eye-reporter/loglimiter"
)

// Frame is a single captured camera frame. Close releases the
// underlying image buffers and must be called for every frame.
type Frame interface {
	// Size returns the frame dimensions in pixels.
	Size() (width, height int)
	Close()
}

// Source yields camera frames for one detection cycle. A Grab error is
// a hard failure (device gone), not "nothing interesting this frame".
type Source interface {
	Grab() (Frame, error)
	Close()
}

// Detector finds candidate rectangles for a target feature. Any
// implementation returning axis-aligned boxes will do; the production
// one is backed by Haar cascades.
type Detector interface {
	// DetectFaces returns face candidates in full frame coordinates.
	DetectFaces(frame Frame) []image.Rectangle

	// DetectEyes searches roi (full frame coordinates) and returns
	// candidates in roi-local coordinates, restricted to the given
	// size bounds.
	DetectEyes(frame Frame, roi image.Rectangle, minSize, maxSize image.Point) []image.Rectangle
}

// Outcome is the result of one detection cycle. FrameWidth and
// FrameHeight are the dimensions of the frame the midpoint was found
// in, so later normalization never relies on an assumed resolution.
type Outcome struct {
	Found       bool
	Midpoint    image.Point
	FrameWidth  int
	FrameHeight int
}

// NewLoop returns a detection loop which opens a fresh source via open
// for each cycle and searches its frames with detector.
func NewLoop(open func() (Source, error), detector Detector, conf *DetectionConfig) *Loop {
	return &Loop{
		open:     open,
		detector: detector,
		conf:     conf,
		limiter:  loglimiter.New(2 * time.Second),
		sleep:    time.Sleep,
	}
}

type Loop struct {
	open     func() (Source, error)
	detector Detector
	conf     *DetectionConfig
	limiter  *loglimiter.Limiter
	sleep    func(time.Duration)
}

// Run performs one bounded detection cycle: up to MaxAttempts frames
// are searched for a face with a plausible eye pair, with AttemptDelay
// between attempts. A frame source failure ends the cycle immediately.
// The zero Outcome ("not found") is returned when the attempt budget
// runs out; worst case wall clock cost is
// MaxAttempts * (capture + detection + AttemptDelay).
func (l *Loop) Run() Outcome {
	src, err := l.open()
	if err != nil {
		log.Printf("could not open frame source: %v", err)
		return Outcome{}
	}
	defer src.Close()

	for attempt := 0; attempt < l.conf.MaxAttempts; attempt++ {
		frame, err := src.Grab()
		if err != nil {
			log.Printf("failed to grab frame: %v", err)
			return Outcome{}
		}

		outcome, ok := l.searchFrame(frame)
		frame.Close()
		if ok {
			return outcome
		}

		l.limiter.Print("no face with usable eyes yet")
		l.sleep(l.conf.AttemptDelay.Duration)
	}
	return Outcome{}
}

func (l *Loop) searchFrame(frame Frame) (Outcome, bool) {
	for _, face := range l.detector.DetectFaces(frame) {
		roi := EyeRegion(face)
		minSize, maxSize := EyeSizeBounds(face)
		eyes := l.detector.DetectEyes(frame, roi, minSize, maxSize)

		pair, ok := ResolveEyes(l.conf, face, roi.Min.Y, eyes)
		if !ok {
			continue
		}
		w, h := frame.Size()
		return Outcome{
			Found:       true,
			Midpoint:    pair.Midpoint,
			FrameWidth:  w,
			FrameHeight: h,
		}, true
	}
	return Outcome{}, false
}
