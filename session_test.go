package abacus

import (
	"strconv"
	"strings"
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type SessionSuite struct {
	s *Session
}

var _ = Suite(&SessionSuite{})

func (s *SessionSuite) SetUpTest(c *C) {
	s.s = NewSession()
}

func (s *SessionSuite) TestEvaluate(c *C) {
	c.Check(s.s.Evaluate("2+2"), Equals, "4")
	c.Check(s.s.Evaluate("10/4"), Equals, "2.5")
	c.Check(s.s.Evaluate("0.1+0.2"), Equals, "0.3")
	c.Check(s.s.Evaluate("2(3+4)"), Equals, "14")
	c.Check(s.s.Evaluate("sqrt(9)"), Equals, "3")
}

func (s *SessionSuite) TestEvaluateError(c *C) {
	out := s.s.Evaluate("1/0")
	c.Check(strings.HasPrefix(out, "error: "), Equals, true, Commentf("got %q", out))
	out = s.s.Evaluate("2*(3")
	c.Check(strings.HasPrefix(out, "error: "), Equals, true, Commentf("got %q", out))
	out = s.s.Evaluate("")
	c.Check(strings.HasPrefix(out, "error: "), Equals, true, Commentf("got %q", out))
	// Failures never reach the history.
	c.Check(s.s.History(), HasLen, 0)
}

func (s *SessionSuite) TestAns(c *C) {
	out := s.s.Evaluate("ans")
	c.Check(strings.HasPrefix(out, "error: "), Equals, true, Commentf("got %q", out))
	c.Check(s.s.Evaluate("2+3"), Equals, "5")
	c.Check(s.s.Evaluate("ans*2"), Equals, "10")
	c.Check(s.s.Evaluate("ans*2"), Equals, "20")
	// A failed evaluation leaves ans at its last good value.
	s.s.Evaluate("1/0")
	c.Check(s.s.Evaluate("ans"), Equals, "20")
}

func (s *SessionSuite) TestHistory(c *C) {
	s.s.Evaluate("1+1")
	s.s.Evaluate("2+2")
	h := s.s.History()
	c.Assert(h, HasLen, 2)
	c.Check(h[0], Equals, HistoryEntry{Expression: "1+1", Result: "2"})
	c.Check(h[1], Equals, HistoryEntry{Expression: "2+2", Result: "4"})
	// History returns a copy; mutating it doesn't touch the session.
	h[0].Result = "oops"
	c.Check(s.s.History()[0].Result, Equals, "2")
}

func (s *SessionSuite) TestRecent(c *C) {
	for i := 1; i <= 15; i++ {
		s.s.Evaluate(strconv.Itoa(i) + "+0")
	}
	c.Check(s.s.History(), HasLen, 15)
	r := s.s.Recent()
	c.Assert(r, HasLen, 10)
	c.Check(r[0].Result, Equals, "6")
	c.Check(r[9].Result, Equals, "15")
}

func (s *SessionSuite) TestClearHistory(c *C) {
	s.s.Evaluate("1+1")
	s.s.ClearHistory()
	c.Check(s.s.History(), HasLen, 0)
	c.Check(s.s.Recent(), HasLen, 0)
}

func (s *SessionSuite) TestDisplay(c *C) {
	c.Check(s.s.Display(), Equals, "")
	s.s.Press("12")
	s.s.Press("+3")
	c.Check(s.s.Display(), Equals, "12+3")
	s.s.Backspace()
	c.Check(s.s.Display(), Equals, "12+")
	s.s.Clear()
	c.Check(s.s.Display(), Equals, "")
}

func (s *SessionSuite) TestBackspaceRune(c *C) {
	s.s.Press("2π")
	s.s.Backspace()
	c.Check(s.s.Display(), Equals, "2")
}

func (s *SessionSuite) TestEquals(c *C) {
	s.s.Press("6*7")
	c.Check(s.s.Equals(), Equals, "42")
	c.Check(s.s.Display(), Equals, "42")
	// The result stays on the display for further keys.
	s.s.Press("+1")
	c.Check(s.s.Equals(), Equals, "43")
}

func (s *SessionSuite) TestEqualsError(c *C) {
	s.s.Press("1/0")
	out := s.s.Equals()
	c.Check(strings.HasPrefix(out, "error: "), Equals, true, Commentf("got %q", out))
	// The typed expression stays put so it can be fixed.
	c.Check(s.s.Display(), Equals, "1/0")
}

func (s *SessionSuite) TestMemory(c *C) {
	c.Check(s.s.MemoryRecall(), Equals, "0")
	s.s.Press("5")
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.MemoryRecall(), Equals, "5")
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.MemoryRecall(), Equals, "10")
	s.s.Clear()
	s.s.Press("3")
	c.Assert(s.s.MemorySubtract(), IsNil)
	c.Check(s.s.MemoryRecall(), Equals, "7")
	s.s.MemoryClear()
	c.Check(s.s.MemoryRecall(), Equals, "0")
	// Memory operations don't evaluate into the history.
	c.Check(s.s.History(), HasLen, 0)
}

func (s *SessionSuite) TestMemoryExpression(c *C) {
	// The memory keys evaluate whatever is on the display.
	s.s.Press("2+3")
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.MemoryRecall(), Equals, "5")
}

func (s *SessionSuite) TestMemoryError(c *C) {
	c.Check(s.s.MemoryAdd(), Not(IsNil))
	s.s.Press("1/0")
	c.Check(s.s.MemoryAdd(), Not(IsNil))
	c.Check(s.s.MemoryRecall(), Equals, "0")
}

func (s *SessionSuite) TestMode(c *C) {
	c.Check(s.s.Mode(), Equals, ModeStandard)
	s.s.SetMode(ModeProgrammer)
	c.Check(s.s.Mode(), Equals, ModeProgrammer)
	c.Check(s.s.Mode().String(), Equals, "programmer")
	s.s.SetMode(ModeScientific)
	c.Check(s.s.Mode().String(), Equals, "scientific")
}
