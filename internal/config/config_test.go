package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// setHome points HOME at dir for the duration of the test. go-homedir
// caches the detected home directory in a package variable, so the cache
// must be dropped whenever HOME changes or later tests see a stale value.
func setHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("HOME", dir)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	// Keep viper away from any real config file in $HOME or cwd.
	setHome(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != constants.BackendDiskv {
		t.Errorf("Backend = %q, want %q", cfg.Backend, constants.BackendDiskv)
	}
	if cfg.Path == "" {
		t.Error("Path must default to a non-empty location")
	}
	if filepath.IsAbs(cfg.Path) == false {
		t.Errorf("Path %q not expanded to an absolute path", cfg.Path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setHome(t, t.TempDir())
	t.Setenv("HAMCARE_BACKEND", "sqlite")
	t.Setenv("HAMCARE_PATH", "/tmp/hamcare-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != constants.BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.Path != "/tmp/hamcare-test.db" {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestFromFlags_FlagsWin(t *testing.T) {
	setHome(t, t.TempDir())
	t.Setenv("HAMCARE_BACKEND", "sqlite")

	cfg, err := FromFlags("/tmp/flagged", "diskv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != constants.BackendDiskv {
		t.Errorf("Backend = %q, want the flag value", cfg.Backend)
	}
	if cfg.Path != "/tmp/flagged" {
		t.Errorf("Path = %q, want the flag value", cfg.Path)
	}
}

func TestFromFlags_RejectsUnknownBackend(t *testing.T) {
	setHome(t, t.TempDir())

	if _, err := FromFlags("", "redis"); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestNormalize_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	setHome(t, home)

	cfg, err := FromFlags("~/data", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(home, "data")
	if cfg.Path != want {
		t.Errorf("Path = %q, want %q", cfg.Path, want)
	}
}

func TestLogRoot_OutsideStorageRoot(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"diskv directory", Config{Path: "/home/u/.hamcare", Backend: constants.BackendDiskv}, "/home/u"},
		{"sqlite file", Config{Path: "/home/u/.hamcare/data.db", Backend: constants.BackendSQLite}, "/home/u/.hamcare"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.LogRoot()
			if got != tt.want {
				t.Errorf("LogRoot() = %q, want %q", got, tt.want)
			}
			if got == tt.cfg.Path {
				t.Error("log root must not be the storage root itself")
			}
		})
	}
}

func TestNormalize_HomeChangesBetweenCalls(t *testing.T) {
	// A resolve under one HOME must not pin later tilde expansion to it.
	setHome(t, t.TempDir())
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	home := t.TempDir()
	setHome(t, home)

	cfg, err := FromFlags("~/data", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, "data"); cfg.Path != want {
		t.Errorf("Path = %q, want %q", cfg.Path, want)
	}
}
