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
	"fmt"
	"log"
	"time"
)

// New returns a Limiter with the given minimum interval between
// repeats of the same message.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		nowFunc:  time.Now,
	}
}

// Limiter suppresses a log message when it repeats the previous one
// within the configured interval. The detection loop emits the same
// "nothing yet" line many times per second; without limiting it would
// flood the journal. When a suppressed run ends, the number of
// suppressed repeats is reported so no information is silently lost.
type Limiter struct {
	interval   time.Duration
	nowFunc    func() time.Time
	lastEntry  string
	lastTime   time.Time
	suppressed int
}

func (l *Limiter) Printf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(format, v...))
}

func (l *Limiter) Print(s string) {
	now := l.nowFunc()
	if s == l.lastEntry && now.Sub(l.lastTime) < l.interval {
		l.suppressed++
		return
	}

	l.flushSuppressed()
	log.Print(s)
	l.lastEntry = s
	l.lastTime = now
}

func (l *Limiter) flushSuppressed() {
	if l.suppressed == 0 {
		return
	}
	log.Printf("(repeated %d more times)", l.suppressed)
	l.suppressed = 0
}
