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
	"fmt"
	"log"

	"gocv.io/x/gocv"

	"github.com/OpenGazeProject/eye-reporter/detect"
)

// Open opens the first working capture device from conf.DeviceIDs. The
// returned Capture implements detect.Source and must be closed after
// the detection cycle; handles are not reused between cycles.
func Open(conf Config) (*Capture, error) {
	for _, id := range conf.DeviceIDs {
		vc, err := gocv.OpenVideoCapture(id)
		if err != nil {
			continue
		}
		if vc.IsOpened() {
			log.Printf("using camera device %d", id)
			return &Capture{vc: vc, flip: conf.FlipHorizontal}, nil
		}
		vc.Close()
	}
	return nil, fmt.Errorf("no working camera device in %v", conf.DeviceIDs)
}

type Capture struct {
	vc   *gocv.VideoCapture
	flip bool
}

// Grab implements detect.Source. The frame is captured in colour and
// converted to grayscale once, up front; face and eye detection both
// run on the gray image.
func (c *Capture) Grab() (detect.Frame, error) {
	img := gocv.NewMat()
	if ok := c.vc.Read(&img); !ok || img.Empty() {
		img.Close()
		return nil, errors.New("failed to read frame from camera")
	}
	if c.flip {
		gocv.Flip(img, &img, 1)
	}

	gray := gocv.NewMat()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	return &Frame{colour: img, gray: gray}, nil
}

func (c *Capture) Close() {
	c.vc.Close()
}

// Frame is one captured frame, held as both the colour image (for
// overlays) and its grayscale conversion (for detection).
type Frame struct {
	colour gocv.Mat
	gray   gocv.Mat
}

func (f *Frame) Size() (int, int) {
	return f.gray.Cols(), f.gray.Rows()
}

// Image returns the colour image for display.
func (f *Frame) Image() gocv.Mat {
	return f.colour
}

func (f *Frame) Close() {
	f.colour.Close()
	f.gray.Close()
}
