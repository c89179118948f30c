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

package illuminator

import (
	"fmt"
	"log"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// Open returns an Illuminator driving the named GPIO pin, switched on
// around each detection cycle so the subject's eyes are lit for the
// cascades. An empty pin name returns nil; the nil Illuminator is safe
// to use and does nothing.
func Open(pinName string) (*Illuminator, error) {
	if pinName == "" {
		return nil, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, err
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("unknown GPIO pin %q", pinName)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("failed to set illuminator pin low: %v", err)
	}
	return &Illuminator{pin: pin}, nil
}

type Illuminator struct {
	pin gpio.PinIO
}

func (ill *Illuminator) On() {
	ill.set(gpio.High)
}

func (ill *Illuminator) Off() {
	ill.set(gpio.Low)
}

func (ill *Illuminator) set(level gpio.Level) {
	if ill == nil {
		return
	}
	if err := ill.pin.Out(level); err != nil {
		log.Printf("failed to switch illuminator: %v", err)
	}
}
