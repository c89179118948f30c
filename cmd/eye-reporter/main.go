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
	"log"

	arg "github.com/alexflint/go-arg"
	"github.com/coreos/go-systemd/daemon"

	"github.com/OpenGazeProject/eye-reporter/camera"
	"github.com/OpenGazeProject/eye-reporter/canbus"
	"github.com/OpenGazeProject/eye-reporter/detect"
	"github.com/OpenGazeProject/eye-reporter/illuminator"
	"github.com/OpenGazeProject/eye-reporter/protocol"
)

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
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

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	logConfig(conf)

	log.Print("loading cascade classifiers")
	cascades, err := camera.LoadCascades(conf.Cascade)
	if err != nil {
		return err
	}
	defer cascades.Close()

	// The camera is reopened for each detection cycle; probe it once
	// now so a missing device is caught before the first trigger.
	log.Print("probing camera")
	probe, err := camera.Open(conf.Camera)
	if err != nil {
		return err
	}
	probe.Close()

	illum, err := illuminator.Open(conf.IlluminatorPin)
	if err != nil {
		return err
	}

	log.Printf("connecting to CAN interface %s", conf.CAN.Interface)
	bus, err := canbus.Open(conf.CAN.Interface)
	if err != nil {
		return err
	}
	defer bus.Close()

	loop := detect.NewLoop(func() (detect.Source, error) {
		src, err := camera.Open(conf.Camera)
		if err != nil {
			return nil, err
		}
		return src, nil
	}, cascades, &conf.Detection)

	responder := protocol.NewResponder(bus, loop, conf.CAN, conf.Report, &cycleHooks{illum: illum})

	log.Println("starting d-bus service")
	if err := startService(responder); err != nil {
		return err
	}

	daemon.SdNotify(false, "READY=1")
	return responder.Run()
}

func logConfig(conf *Config) {
	log.Printf("CAN interface: %s", conf.CAN.Interface)
	log.Printf("trigger ID: 0x%X, data ID: 0x%X", conf.CAN.TriggerID, conf.CAN.DataID)
	log.Printf("camera devices: %v", conf.Camera.DeviceIDs)
	log.Printf("face cascade: %s", conf.Cascade.FaceCascade)
	log.Printf("eye cascade: %s", conf.Cascade.EyeCascade)
	log.Printf("detection: up to %d attempts, %s apart", conf.Detection.MaxAttempts, conf.Detection.AttemptDelay)
	log.Printf("no-eyes sentinel: %d", conf.Report.Sentinel)
	if conf.IlluminatorPin != "" {
		log.Printf("illuminator pin: %s", conf.IlluminatorPin)
	}
}
