package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:2222"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	t.Cleanup(func() {
		if srv.store != nil {
			srv.store.Close()
		}
	})

	if srv.Addr() != "127.0.0.1:2222" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:2222", srv.Addr())
	}
	if srv.store == nil {
		t.Error("Run journal should be open")
	}
	if _, err := os.Stat(filepath.Join(dir, "keys")); err != nil {
		t.Errorf("Host key directory not created: %v", err)
	}
}
