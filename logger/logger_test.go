// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/sixtyfive/logger"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// fewer entries
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for i := 0; i < 3; i++ {
		log.Logf(logger.Allow, "CPU", "unsupported opcode (%#02x)", 0xff)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "CPU: unsupported opcode (0xff) (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	log.Log(logger.Allow, "tag", "c")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: b\ntag: c\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: a\n")

	w.Reset()
	log.Log(logger.Allow, "tag", "b")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: b\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w, false)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

type stringerTest struct{}

func (stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestBorrowLog(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "tag", "detail")

	var n int
	log.BorrowLog(func(e []logger.Entry) {
		n = len(e)
		if n > 0 {
			test.ExpectEquality(t, e[0].Tag, "tag")
			test.ExpectEquality(t, e[0].Detail, "detail")
		}
	})
	test.ExpectEquality(t, n, 1)
}
