package input

import (
	"bufio"
	"io"
	"time"
	"unicode/utf8"
)

// Source yields raw input events. Poll waits at most timeout and reports
// false when nothing arrived.
type Source interface {
	Poll(timeout time.Duration) (RawInput, bool)
}

// escapeWait is how long a lone ESC waits for the rest of a sequence
const escapeWait = 10 * time.Millisecond

// TerminalSource decodes keys from a terminal in raw mode. A goroutine
// reads bytes into a channel so that polling can time out.
type TerminalSource struct {
	bytes chan byte
	now   func() time.Time
}

// NewTerminalSource starts reading r. When r is exhausted the source
// reports a "quit" code.
func NewTerminalSource(r io.Reader) *TerminalSource {
	s := &TerminalSource{bytes: make(chan byte, 64), now: time.Now}
	go s.read(bufio.NewReader(r))
	return s
}

func (s *TerminalSource) read(r *bufio.Reader) {
	defer close(s.bytes)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		s.bytes <- b
	}
}

// next waits up to timeout for a byte. closed is true once the reader ended.
func (s *TerminalSource) next(timeout time.Duration) (b byte, ok, closed bool) {
	select {
	case b, ok := <-s.bytes:
		return b, ok, !ok
	case <-time.After(timeout):
		return 0, false, false
	}
}

// Poll implements Source
func (s *TerminalSource) Poll(timeout time.Duration) (RawInput, bool) {
	b, ok, closed := s.next(timeout)
	if closed {
		return s.raw("quit"), true
	}
	if !ok {
		return RawInput{}, false
	}

	switch {
	case b == 0x1b:
		return s.raw(s.escape()), true
	case b == 3: // Ctrl+C
		return s.raw("quit"), true
	case b == '\r' || b == '\n':
		return s.raw("enter"), true
	case b == 127 || b == 8:
		return s.raw("backspace"), true
	case b < utf8.RuneSelf:
		return s.raw(string(rune(b))), true
	}
	return s.raw(s.multibyte(b)), true
}

// escape decodes the rest of an escape sequence. Arrow keys arrive as
// ESC [ A or ESC O A, possibly with modifier parameters (ESC [ 1 ; 5 A).
// Other sequences are consumed whole and reported as "".
func (s *TerminalSource) escape() string {
	b2, ok, _ := s.next(escapeWait)
	if !ok {
		return "escape"
	}
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	final, ok := s.sequenceEnd(b2 == '[')
	if !ok {
		return "escape"
	}
	switch final {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// sequenceEnd returns the final byte of a sequence. CSI sequences run
// through parameter and intermediate bytes up to a byte in 0x40-0x7e; SS3
// sequences are a single byte.
func (s *TerminalSource) sequenceEnd(csi bool) (byte, bool) {
	for {
		b, ok, _ := s.next(escapeWait)
		if !ok {
			return 0, false
		}
		if !csi || (b >= 0x40 && b <= 0x7e) {
			return b, true
		}
	}
}

// multibyte collects the continuation bytes of a multi-byte character
func (s *TerminalSource) multibyte(first byte) string {
	buf := []byte{first}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		b, ok, _ := s.next(escapeWait)
		if !ok {
			break
		}
		buf = append(buf, b)
	}
	return string(buf)
}

func (s *TerminalSource) raw(code string) RawInput {
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: s.now()}
}

// ChannelSource yields events pushed by a GUI event loop. A closed channel
// reads as "quit".
type ChannelSource struct {
	events <-chan RawInput
}

// NewChannelSource wraps events
func NewChannelSource(events <-chan RawInput) *ChannelSource {
	return &ChannelSource{events: events}
}

// Poll implements Source
func (s *ChannelSource) Poll(timeout time.Duration) (RawInput, bool) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return RawInput{Device: DeviceKeyboard, Code: "quit", Timestamp: time.Now()}, true
		}
		return ev, true
	case <-time.After(timeout):
		return RawInput{}, false
	}
}

// ScriptSource replays a fixed list of codes, then reports "quit". It drives
// headless runs and tests.
type ScriptSource struct {
	Codes []string
}

// Poll implements Source
func (s *ScriptSource) Poll(time.Duration) (RawInput, bool) {
	if len(s.Codes) == 0 {
		return RawInput{Device: DeviceUnknown, Code: "quit"}, true
	}
	code := s.Codes[0]
	s.Codes = s.Codes[1:]
	return RawInput{Device: DeviceUnknown, Code: code}, true
}
