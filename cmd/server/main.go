// dungeongen-server lets remote users browse generated levels over SSH and
// optionally serves the JSON level API over HTTP. Build:
//
//	go build -o dungeongen-server ./cmd/server
//
// Usage:
//
//	./dungeongen-server [--port 2222] [--key server_host_key] [--http :8080]
//
// Connect with:
//
//	ssh -t -p 2222 localhost         # random seed
//	ssh -t -p 2222 42@localhost      # seed 42
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"dungeongen/internal/api"
	"dungeongen/internal/dungeon"
	"dungeongen/internal/render"
	internalssh "dungeongen/internal/ssh"
	"dungeongen/internal/viewer"
)

// config holds the server settings. Flags override the environment.
type config struct {
	sshAddr  string
	httpAddr string
	keyFile  string
}

// loadConfig reads SSH_ADDR and SERVER_ADDR for defaults, then the flags.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{
		sshAddr:  getenv("SSH_ADDR"),
		httpAddr: getenv("SERVER_ADDR"),
		keyFile:  "server_host_key",
	}
	if cfg.sshAddr == "" {
		cfg.sshAddr = ":2222"
	}

	fs := flag.NewFlagSet("dungeongen-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	port := fs.Int("port", 0, "SSH server port (overrides SSH_ADDR)")
	fs.StringVar(&cfg.keyFile, "key", cfg.keyFile, "Path to the PEM-encoded host key (auto-generated if absent)")
	fs.StringVar(&cfg.httpAddr, "http", cfg.httpAddr, "HTTP API address, empty to disable (default from SERVER_ADDR)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if *port != 0 {
		cfg.sshAddr = fmt.Sprintf(":%d", *port)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	levels := dungeon.NewCache(512)
	srv := &gossh.Server{
		Addr: cfg.sshAddr,
		Handler: func(s gossh.Session) {
			handleSession(s, levels)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication; the server only shows generated maps.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(cfg.keyFile)},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("dungeongen SSH server listening on %s", cfg.sshAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, gossh.ErrServerClosed) {
			return err
		}
		return nil
	})
	var web *http.Server
	if cfg.httpAddr != "" {
		web = &http.Server{Addr: cfg.httpAddr, Handler: api.NewRouter(levels), ReadHeaderTimeout: 10 * time.Second}
		g.Go(func() error {
			log.Printf("dungeongen HTTP API listening on %s", cfg.httpAddr)
			if err := web.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if web != nil {
			_ = web.Shutdown(shutdown)
		}
		return srv.Shutdown(shutdown)
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// handleSession is the gliderlabs SSH handler for one connection. It
// blocks until the user quits or disconnects.
func handleSession(s gossh.Session, levels *dungeon.Cache) {
	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "The level browser needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := seedFor(s.User(), uint64(time.Now().UnixNano()))
	log.Printf("%s: browsing seed %d", s.RemoteAddr(), seed)
	viewer.New(screen, viewer.Options{
		Seed:   seed,
		Mode:   render.ASCII,
		Levels: levels,
	}).Run(s.Context())
}

// seedFor uses a numeric SSH user name as the seed and fallback otherwise.
func seedFor(user string, fallback uint64) uint64 {
	if seed, err := strconv.ParseUint(user, 10, 64); err == nil {
		return seed
	}
	return fallback
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dungeongen server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
