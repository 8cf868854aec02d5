// Package ssh adapts gliderlabs ssh sessions to tcell screens.
package ssh

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("session has no pty")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
// Each connected SSH client gets its own SessionTty and tcell.Screen.
type SessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
	watch   sync.Once
}

// NewSessionTty wraps s as a tcell Tty. It fails for sessions without a
// PTY request.
func NewSessionTty(s gossh.Session) (*SessionTty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}, nil
}

// allowedTerms are the terminal types passed on to terminfo. TERM comes
// from the client, so anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// Term returns the client's terminal type from the PTY request or the
// session environment.
func Term(s gossh.Session) string {
	term := ""
	if pty, _, ok := s.Pty(); ok {
		term = pty.Term
	}
	if term == "" {
		for _, env := range s.Environ() {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return DefaultTerm
	}
	return term
}

// termMu guards TERM in the process environment around screen creation.
var termMu sync.Mutex

// NewScreen creates and initialises a tcell screen drawing to s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	tty, err := NewSessionTty(s)
	if err != nil {
		return nil, err
	}
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", Term(s))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// Read reads raw keyboard bytes from the session.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the session.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the server handler owns the channel.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH flushes writes immediately.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback run after every window change. The
// first call starts draining the window-change channel for the lifetime
// of the session; later calls only replace the callback.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				localCb := t.cb
				t.mu.Unlock()
				if localCb != nil {
					localCb()
				}
			}
		}()
	})
}
