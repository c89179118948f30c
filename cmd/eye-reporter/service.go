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
	"errors"

	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"

	"github.com/OpenGazeProject/eye-reporter/protocol"
)

const (
	dbusName = "org.opengaze.eyereporter"
	dbusPath = "/org/opengaze/eyereporter"
)

type service struct {
	responder *protocol.Responder
}

func startService(responder *protocol.Responder) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name already taken")
	}

	s := &service{
		responder: responder,
	}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")

	return nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

// LastReading returns the most recently reported coordinates.
func (s *service) LastReading() (int32, int32, *dbus.Error) {
	x, y, ok := s.responder.LastReading()
	if !ok {
		return 0, 0, &dbus.Error{
			Name: dbusName + ".LastReading",
			Body: []interface{}{"no reading taken yet"},
		}
	}
	return x, y, nil
}

// TakeReading runs a detection cycle immediately, without waiting for
// a bus trigger, and returns the normalized result. No CAN response is
// sent for it.
func (s *service) TakeReading() (int32, int32, *dbus.Error) {
	x, y := s.responder.TakeReading()
	return x, y, nil
}
