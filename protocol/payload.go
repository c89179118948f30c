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
	"encoding/binary"

	"go.einride.tech/can"
)

// Coordinates travel as two little-endian int32 values, eight bytes
// total, no tag or length prefix. The layout is fixed and versionless;
// the receiving peripheral depends on it staying bit-exact.

func PackCoordinates(x, y int32) can.Data {
	var d can.Data
	binary.LittleEndian.PutUint32(d[0:4], uint32(x))
	binary.LittleEndian.PutUint32(d[4:8], uint32(y))
	return d
}

func UnpackCoordinates(d can.Data) (x, y int32) {
	x = int32(binary.LittleEndian.Uint32(d[0:4]))
	y = int32(binary.LittleEndian.Uint32(d[4:8]))
	return x, y
}
