package ssh

import (
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession implements the parts of gossh.Session the adapter uses.
type fakeSession struct {
	gossh.Session
	env   []string
	pty   gossh.Pty
	hasPT bool
	winCh chan gossh.Window
}

func (f *fakeSession) Environ() []string { return f.env }

func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return f.pty, f.winCh, f.hasPT
}

func TestNewSessionTtyNeedsPTY(t *testing.T) {
	if _, err := NewSessionTty(&fakeSession{}); !errors.Is(err, ErrNoPTY) {
		t.Errorf("err = %v, want ErrNoPTY", err)
	}
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name string
		s    *fakeSession
		want string
	}{
		{"pty request", &fakeSession{hasPT: true, pty: gossh.Pty{Term: "screen"}, env: []string{"TERM=vt100"}}, "screen"},
		{"environment", &fakeSession{env: []string{"LANG=C", "TERM=vt100"}}, "vt100"},
		{"default", &fakeSession{env: []string{"TERM="}}, DefaultTerm},
		{"unknown term", &fakeSession{env: []string{"TERM=evil-term"}}, DefaultTerm},
		{"path traversal", &fakeSession{hasPT: true, pty: gossh.Pty{Term: "../../../etc/passwd"}}, DefaultTerm},
		{"kitty", &fakeSession{env: []string{"TERM=xterm-kitty"}}, DefaultTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.s); got != tt.want {
				t.Errorf("Term = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindowSizeFollowsResize(t *testing.T) {
	s := &fakeSession{
		hasPT: true,
		pty:   gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}},
		winCh: make(chan gossh.Window),
	}
	tty, err := NewSessionTty(s)
	if err != nil {
		t.Fatal(err)
	}
	if ws, _ := tty.WindowSize(); ws.Width != 80 || ws.Height != 24 {
		t.Errorf("initial size %dx%d", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	tty.NotifyResize(func() { resized <- struct{}{} })
	s.winCh <- gossh.Window{Width: 132, Height: 43}
	select {
	case <-resized:
	case <-time.After(5 * time.Second):
		t.Fatal("resize callback not run")
	}
	if ws, _ := tty.WindowSize(); ws.Width != 132 || ws.Height != 43 {
		t.Errorf("size after resize %dx%d", ws.Width, ws.Height)
	}
	close(s.winCh)
}
