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

package canbus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"
)

// Bus sends and receives fixed-size CAN frames identified by an
// arbitration ID.
type Bus interface {
	// Receive blocks until the next frame arrives. There is
	// deliberately no timeout: waiting for the next trigger is the
	// idle state of the whole process.
	Receive() (can.Frame, error)
	Send(can.Frame) error
	Close() error
}

type Config struct {
	Interface string `yaml:"interface"`
	TriggerID uint32 `yaml:"trigger-id"`
	DataID    uint32 `yaml:"data-id"`
}

func DefaultConfig() Config {
	return Config{
		Interface: "can0",
		TriggerID: 0x200,
		DataID:    0x100,
	}
}

func (conf *Config) Validate() error {
	if conf.Interface == "" {
		return errors.New("can interface should be set")
	}
	if conf.TriggerID > can.MaxID || conf.DataID > can.MaxID {
		return fmt.Errorf("arbitration IDs should be standard (11 bit, max 0x%X)", uint32(can.MaxID))
	}
	if conf.TriggerID == conf.DataID {
		return errors.New("trigger-id and data-id should differ")
	}
	return nil
}

// Open connects to a SocketCAN interface (e.g. "can0").
func Open(ifname string) (*SocketBus, error) {
	conn, err := socketcan.Dial("can", ifname)
	if err != nil {
		return nil, fmt.Errorf("opening CAN interface %s: %v", ifname, err)
	}
	return &SocketBus{
		conn: conn,
		rx:   socketcan.NewReceiver(conn),
		tx:   socketcan.NewTransmitter(conn),
	}, nil
}

type SocketBus struct {
	conn net.Conn
	rx   *socketcan.Receiver
	tx   *socketcan.Transmitter
}

func (b *SocketBus) Receive() (can.Frame, error) {
	if !b.rx.Receive() {
		if err := b.rx.Err(); err != nil {
			return can.Frame{}, err
		}
		return can.Frame{}, io.EOF
	}
	return b.rx.Frame(), nil
}

func (b *SocketBus) Send(frame can.Frame) error {
	return b.tx.TransmitFrame(context.Background(), frame)
}

func (b *SocketBus) Close() error {
	return b.conn.Close()
}
