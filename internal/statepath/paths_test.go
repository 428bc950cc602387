package statepath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirRespectsOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "state")
	t.Setenv(envHome, custom)

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if dir != custom {
		t.Fatalf("dir = %q, want %q", dir, custom)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("override path not created as a directory")
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Fatalf("perm = %o, want 700", perm)
	}
}

func TestDataDirDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envHome, "")

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(home, dirName); dir != want {
		t.Fatalf("dir = %q, want %q", dir, want)
	}
}

func TestDBPath(t *testing.T) {
	t.Setenv(envHome, t.TempDir())

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath: %v", err)
	}
	if filepath.Base(p) != dbFilename {
		t.Fatalf("path = %q", p)
	}
}
