package abacus

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Mode selects which keypad a session presents. The engine accepts the same
// expressions in every mode; the mode tells the surrounding UI which keys to
// offer.
type Mode int

const (
	ModeStandard Mode = iota
	ModeScientific
	ModeProgrammer
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeScientific:
		return "scientific"
	case ModeProgrammer:
		return "programmer"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// HistoryEntry records one successful evaluation. Entries are never modified
// once appended.
type HistoryEntry struct {
	// Expression is the text that was evaluated.
	Expression string
	// Result is the formatted result it produced.
	Result string
}

// recentHistory is the number of entries the recent-history window shows.
// The full history is retained underneath.
const recentHistory = 10

// Session holds the state of one calculator: the display buffer being typed,
// the memory register, the evaluation history, and the keypad mode. A Session
// owns its evaluation context and serializes all access to it; it is not safe
// for concurrent use.
//
// After each successful evaluation the session defines the variable "ans" as
// the result, so the next expression can continue from it.
type Session struct {
	ctx     *Context
	display string
	history []HistoryEntry
	memory  *big.Float
	mode    Mode
}

// NewSession creates a calculator session in standard mode with an empty
// display, empty history, and zero memory.
func NewSession(opts ...ContextOption) *Session {
	ctx := NewContext(opts...)
	return &Session{
		ctx:    ctx,
		memory: new(big.Float).SetPrec(ctx.Prec()),
	}
}

// Press appends text, usually a single key's worth, to the display buffer.
func (s *Session) Press(keys string) {
	s.display += keys
}

// Backspace removes the last rune from the display buffer.
func (s *Session) Backspace() {
	_, sz := utf8.DecodeLastRuneInString(s.display)
	s.display = s.display[:len(s.display)-sz]
}

// Clear empties the display buffer. History and memory are unaffected.
func (s *Session) Clear() {
	s.display = ""
}

// Display returns the current contents of the display buffer.
func (s *Session) Display() string {
	return s.display
}

// Evaluate parses and evaluates an expression and returns the display string:
// the formatted result on success, or an error message beginning with
// "error:". It never panics and never returns an unformatted failure.
//
// A successful evaluation appends to the history and defines "ans"; a failed
// one leaves history, memory, and display untouched.
func (s *Session) Evaluate(src string) string {
	r, err := s.eval(src)
	if err != nil {
		return "error: " + err.Error()
	}
	out := Format(r)
	s.history = append(s.history, HistoryEntry{Expression: src, Result: out})
	s.ctx.Set("ans", r)
	return out
}

// eval parses and evaluates without touching session state.
func (s *Session) eval(src string) (*big.Float, error) {
	a, err := Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	r := s.ctx.Eval(a)
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Equals evaluates the display buffer, like pressing the = key. On success
// the display is replaced with the result so that further keys continue from
// it; on failure the display keeps the typed expression and the error message
// is returned.
func (s *Session) Equals() string {
	out := s.Evaluate(s.display)
	if !strings.HasPrefix(out, "error:") {
		s.display = out
	}
	return out
}

// History returns a copy of the full evaluation history, oldest first.
func (s *Session) History() []HistoryEntry {
	return append([]HistoryEntry(nil), s.history...)
}

// Recent returns a copy of the most recent history entries, up to the size of
// the display window.
func (s *Session) Recent() []HistoryEntry {
	h := s.history
	if len(h) > recentHistory {
		h = h[len(h)-recentHistory:]
	}
	return append([]HistoryEntry(nil), h...)
}

// ClearHistory discards every history entry.
func (s *Session) ClearHistory() {
	s.history = nil
}

// MemoryAdd evaluates the display buffer and adds the value to the memory
// register. The display and history are unchanged.
func (s *Session) MemoryAdd() error {
	v, err := s.eval(s.display)
	if err != nil {
		return err
	}
	s.memory.Add(s.memory, v)
	return nil
}

// MemorySubtract evaluates the display buffer and subtracts the value from
// the memory register. The display and history are unchanged.
func (s *Session) MemorySubtract() error {
	v, err := s.eval(s.display)
	if err != nil {
		return err
	}
	s.memory.Sub(s.memory, v)
	return nil
}

// MemoryRecall returns the formatted contents of the memory register.
func (s *Session) MemoryRecall() string {
	return Format(s.memory)
}

// MemoryClear resets the memory register to zero.
func (s *Session) MemoryClear() {
	s.memory.SetInt64(0)
}

// SetMode switches the keypad mode.
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// Mode reports the current keypad mode.
func (s *Session) Mode() Mode {
	return s.mode
}
