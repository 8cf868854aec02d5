package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name      string
		args      []string
		env       map[string]string
		ssh, http string
	}{
		{"defaults", nil, nil, ":2222", ""},
		{"environment", nil, map[string]string{"SSH_ADDR": "127.0.0.1:2022", "SERVER_ADDR": ":8080"}, "127.0.0.1:2022", ":8080"},
		{"port flag wins", []string{"-port", "3333"}, map[string]string{"SSH_ADDR": ":2022"}, ":3333", ""},
		{"http flag wins", []string{"-http", ":9090"}, map[string]string{"SERVER_ADDR": ":8080"}, ":2222", ":9090"},
		{"http disabled", []string{"-http", ""}, map[string]string{"SERVER_ADDR": ":8080"}, ":2222", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadConfig(tc.args, func(k string) string { return tc.env[k] })
			if err != nil {
				t.Fatal(err)
			}
			if cfg.sshAddr != tc.ssh || cfg.httpAddr != tc.http {
				t.Errorf("ssh=%q http=%q, want %q %q", cfg.sshAddr, cfg.httpAddr, tc.ssh, tc.http)
			}
			if cfg.keyFile != "server_host_key" {
				t.Errorf("key file %q", cfg.keyFile)
			}
		})
	}
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	if _, err := loadConfig([]string{"-port", "many"}, func(string) string { return "" }); err == nil {
		t.Error("bad port accepted")
	}
}

func TestSeedFor(t *testing.T) {
	cases := []struct {
		user string
		want uint64
	}{
		{"42", 42},
		{"0", 0},
		{"18446744073709551615", 18446744073709551615},
		{"alice", 7},
		{"-3", 7},
		{"", 7},
	}
	for _, tc := range cases {
		if got := seedFor(tc.user, 7); got != tc.want {
			t.Errorf("seedFor(%q) = %d, want %d", tc.user, got, tc.want)
		}
	}
}

func TestHostKeyPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first := loadOrCreateHostKey(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second := loadOrCreateHostKey(path)
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("reloaded key differs")
	}
}
