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
	"github.com/coreos/go-systemd/daemon"

	"github.com/OpenGazeProject/eye-reporter/illuminator"
)

// cycleHooks lights the illuminator while a detection cycle runs and
// pats the systemd watchdog after each response.
type cycleHooks struct {
	illum *illuminator.Illuminator
}

func (h *cycleHooks) DetectionStarted() {
	h.illum.On()
}

func (h *cycleHooks) DetectionEnded() {
	h.illum.Off()
}

func (h *cycleHooks) ResponseSent(x, y int32) {
	daemon.SdNotify(false, "WATCHDOG=1")
}
