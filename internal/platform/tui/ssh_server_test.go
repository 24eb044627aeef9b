package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "replays.db")
	cfg.MetricsAddr = "127.0.0.1:0"

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.store == nil {
		t.Error("expected replay store to be open")
	}
	if srv.http == nil {
		t.Error("expected metrics listener to be configured")
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewSSHServerRejectsBadConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game = config.DefaultBlocksConfig()
	cfg.Game.Board.Width = 1
	cfg.DBPath = filepath.Join(t.TempDir(), "replays.db")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected invalid board width to be rejected")
	}
}
