package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestSaveConfig_ConcurrentWriters_DoesNotCorruptConfig(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("SALESHUB_CONFIG_DIR", cfgDir)

	if err := SaveConfig(&GlobalConfig{DataDir: "/tmp/seed"}); err != nil {
		t.Fatalf("SaveConfig(seed): %v", err)
	}

	const n = 64
	errCh := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cfg, err := LoadConfig()
			if err != nil {
				errCh <- err
				return
			}
			cfg.DataDir = fmt.Sprintf("/tmp/data-%d", i)
			cfg.LogLevel = "debug"
			if err := SaveConfig(cfg); err != nil {
				errCh <- err
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent SaveConfig: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(cfgDir, "config.json"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		t.Fatalf("config is not valid json: %v\n%s", err, string(b))
	}
	if !strings.HasPrefix(cfg.DataDir, "/tmp/data-") || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected final config: %#v", cfg)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(cfgDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("leftover temp file: %s", e.Name())
		}
	}
}
