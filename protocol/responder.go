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

import (
	"fmt"
	"log"
	"sync"

	"go.einride.tech/can"

	"github.com/OpenGazeProject/eye-reporter/canbus"
	"github.com/OpenGazeProject/eye-reporter/detect"
)

// Runner performs one bounded detection cycle.
type Runner interface {
	Run() detect.Outcome
}

// Listener is notified at the edges of each detection cycle.
type Listener interface {
	DetectionStarted()
	DetectionEnded()
	ResponseSent(x, y int32)
}

func NewResponder(bus canbus.Bus, runner Runner, busConf canbus.Config, conf Config, listener Listener) *Responder {
	return &Responder{
		bus:       bus,
		runner:    runner,
		triggerID: busConf.TriggerID,
		dataID:    busConf.DataID,
		sentinel:  conf.Sentinel,
		listener:  listener,
	}
}

// Responder is the bus-facing engine: idle until a trigger frame
// arrives, run one detection cycle, answer with one response frame,
// idle again. At most one cycle runs at a time; a trigger arriving
// mid-cycle waits in the socket receive buffer and is processed next,
// so responses always come out in trigger order.
type Responder struct {
	bus       canbus.Bus
	runner    Runner
	triggerID uint32
	dataID    uint32
	sentinel  int32
	listener  Listener

	mu          sync.Mutex
	haveReading bool
	lastX       int32
	lastY       int32
}

// Run services triggers until the bus fails. Frames with other
// arbitration IDs are ignored without a state change. Every trigger is
// answered exactly once - a failed detection still sends the sentinel
// pair, never silence. A send failure is logged and the responder goes
// back to waiting; retrying forever would wedge the node and starve
// the next trigger.
func (r *Responder) Run() error {
	log.Printf("waiting for trigger (ID 0x%X)", r.triggerID)
	for {
		frame, err := r.bus.Receive()
		if err != nil {
			return fmt.Errorf("receiving from CAN bus: %w", err)
		}
		if frame.ID != r.triggerID {
			continue
		}

		log.Print("trigger received, starting detection")
		if err := r.respond(); err != nil {
			log.Printf("response not sent: %v", err)
		}
		log.Printf("waiting for next trigger (ID 0x%X)", r.triggerID)
	}
}

func (r *Responder) respond() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, y := r.takeReading()
	frame := can.Frame{
		ID:     r.dataID,
		Length: 8,
		Data:   PackCoordinates(x, y),
	}
	if err := r.bus.Send(frame); err != nil {
		return err
	}
	log.Printf("sent eye coordinates: x=%d y=%d", x, y)
	if r.listener != nil {
		r.listener.ResponseSent(x, y)
	}
	return nil
}

// TakeReading runs a detection cycle immediately and returns the
// normalized result without touching the bus. Used by the d-bus
// service; serialised with bus-triggered cycles by the same lock.
func (r *Responder) TakeReading() (int32, int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.takeReading()
}

// LastReading returns the most recent normalized reading, if any.
func (r *Responder) LastReading() (int32, int32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastX, r.lastY, r.haveReading
}

func (r *Responder) takeReading() (int32, int32) {
	if r.listener != nil {
		r.listener.DetectionStarted()
	}
	outcome := r.runner.Run()
	if r.listener != nil {
		r.listener.DetectionEnded()
	}

	if !outcome.Found {
		log.Print("no eyes detected within the attempt budget")
	}
	x, y := Normalize(outcome, r.sentinel)
	r.lastX, r.lastY = x, y
	r.haveReading = true
	return x, y
}
