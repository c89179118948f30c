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

package loglimiter

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDistinctMessagesPass(t *testing.T) {
	logs, reset := captureLogs()
	defer reset()

	limiter := New(time.Minute)
	limiter.Print("hello")
	limiter.Print("world")

	assert.Equal(t, "hello\nworld\n", logs.String())
}

func TestPrintf(t *testing.T) {
	logs, reset := captureLogs()
	defer reset()

	limiter := New(time.Minute)
	limiter.Printf("attempt %d", 42)

	assert.Equal(t, "attempt 42\n", logs.String())
}

func TestRepeatsSuppressedWithinInterval(t *testing.T) {
	logs, reset := captureLogs()
	defer reset()

	now := time.Now()
	limiter := New(2 * time.Second)
	limiter.nowFunc = func() time.Time { return now }

	limiter.Print("searching")
	limiter.Print("searching")
	limiter.Print("searching")

	assert.Equal(t, "searching\n", logs.String())
}

func TestRepeatsPassAfterInterval(t *testing.T) {
	logs, reset := captureLogs()
	defer reset()

	now := time.Now()
	limiter := New(2 * time.Second)
	limiter.nowFunc = func() time.Time { return now }

	limiter.Print("searching")
	now = now.Add(3 * time.Second)
	limiter.Print("searching")

	assert.Equal(t, "searching\nsearching\n", logs.String())
}

func TestSuppressedCountReported(t *testing.T) {
	logs, reset := captureLogs()
	defer reset()

	now := time.Now()
	limiter := New(2 * time.Second)
	limiter.nowFunc = func() time.Time { return now }

	limiter.Print("searching")
	limiter.Print("searching")
	limiter.Print("searching")
	limiter.Print("found")

	assert.Equal(t, "searching\n(repeated 2 more times)\nfound\n", logs.String())
}

func captureLogs() (*bytes.Buffer, func()) {
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	log.SetFlags(0)
	return buf, func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}
}
