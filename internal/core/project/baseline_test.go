package project

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPlaceholderBaseline(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "doc.blend")
	if err := (PlaceholderBaseline{}).WriteBaseline(p); err != nil {
		t.Fatalf("WriteBaseline() error = %v", err)
	}
	if err := os.WriteFile(p, []byte("kept"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (PlaceholderBaseline{}).WriteBaseline(p); err != nil {
		t.Fatalf("second WriteBaseline() error = %v", err)
	}
	if data, _ := os.ReadFile(p); string(data) != "kept" {
		t.Errorf("placeholder overwrote existing file: %q", data)
	}
}

func TestExecBaseline(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	t.Parallel()

	dir := t.TempDir()

	t.Run("path placeholder", func(t *testing.T) {
		p := filepath.Join(dir, "a.blend")
		b := ExecBaseline{Command: "sh", Args: []string{"-c", `printf BLEND > "$1"`, "baseline", PathArg}}
		if err := b.WriteBaseline(p); err != nil {
			t.Fatalf("WriteBaseline() error = %v", err)
		}
		if data, _ := os.ReadFile(p); string(data) != "BLEND" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("command fails", func(t *testing.T) {
		b := ExecBaseline{Command: "sh", Args: []string{"-c", "exit 3"}}
		if err := b.WriteBaseline(filepath.Join(dir, "b.blend")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("command does not create file", func(t *testing.T) {
		b := ExecBaseline{Command: "sh", Args: []string{"-c", "true"}}
		if err := b.WriteBaseline(filepath.Join(dir, "c.blend")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unconfigured", func(t *testing.T) {
		if err := (ExecBaseline{}).WriteBaseline(filepath.Join(dir, "d.blend")); err == nil {
			t.Error("expected error")
		}
	})
}
