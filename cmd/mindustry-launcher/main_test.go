// /cmd/mindustry-launcher/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BalaM314/MindustryLauncher/internal/log"
	"github.com/BalaM314/MindustryLauncher/internal/version"
)

func TestEnsureArtifact_NoticesIgnoredCompileFlag(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "v146.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log.Log.SetOutput(&buf)
	defer log.Log.SetOutput(os.Stderr)

	compileFirst = true
	defer func() { compileFirst = false }()

	if err := ensureArtifact(&version.Version{ArtifactPath: jar, IsCustomNamed: true}); err != nil {
		t.Fatalf("ensureArtifact() error: %v", err)
	}
	if !strings.Contains(buf.String(), "ignoring --compile") {
		t.Errorf("no notice that --compile was ignored, log output: %q", buf.String())
	}
}

func TestEnsureArtifact_ExistingJarNeedsNoWork(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "v146.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0644); err != nil {
		t.Fatal(err)
	}
	compileFirst = false
	if err := ensureArtifact(&version.Version{ArtifactPath: jar, IsCustomNamed: true}); err != nil {
		t.Errorf("ensureArtifact() error for an already-downloaded jar: %v", err)
	}
}

func TestEnsureArtifact_UncompiledSourceTree(t *testing.T) {
	dir := t.TempDir()
	v := &version.Version{ArtifactPath: dir, IsSourceTree: true}
	compileFirst = false
	err := ensureArtifact(v)
	if err == nil {
		t.Fatal("ensureArtifact() succeeded for a source tree with no built jar")
	}
	if !strings.Contains(err.Error(), "--compile") {
		t.Errorf("error %q does not point at --compile", err)
	}
}

func TestEnsureArtifact_MissingCustomJar(t *testing.T) {
	v := &version.Version{
		ArtifactPath:  filepath.Join(t.TempDir(), "missing.jar"),
		IsCustomNamed: true,
	}
	compileFirst = false
	if err := ensureArtifact(v); err == nil {
		t.Error("ensureArtifact() succeeded for a missing custom jar")
	}
}
