// /internal/mods/mods_test.go
package mods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BalaM314/MindustryLauncher/internal/config"
	"github.com/BalaM314/MindustryLauncher/internal/util"
	"github.com/BalaM314/MindustryLauncher/internal/version"
)

func TestClassify(t *testing.T) {
	base := t.TempDir()

	jar := filepath.Join(base, "mod.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0644); err != nil {
		t.Fatal(err)
	}

	plainDir := filepath.Join(base, "unpacked")
	if err := os.Mkdir(plainDir, 0755); err != nil {
		t.Fatal(err)
	}

	project := filepath.Join(base, "javamod")
	if err := os.Mkdir(project, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, version.BuildDescriptor), []byte("// gradle"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		want Kind
	}{
		{jar, KindFile},
		{plainDir, KindDirectory},
		{project, KindJavaProject},
		{filepath.Join(base, "missing"), KindInvalid},
	}
	for _, c := range cases {
		if got := Classify(c.path); got != c.want {
			t.Errorf("Classify(%s) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestSync_CopiesFilesAndDirectories(t *testing.T) {
	base := t.TempDir()
	modsDir := filepath.Join(base, "mods")
	if err := os.Mkdir(modsDir, 0755); err != nil {
		t.Fatal(err)
	}

	jar := filepath.Join(base, "mod.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0644); err != nil {
		t.Fatal(err)
	}
	unpacked := filepath.Join(base, "unpacked")
	if err := os.MkdirAll(filepath.Join(unpacked, "sprites"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(unpacked, "sprites", "a.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := &config.Settings{ModsDir: modsDir}
	entries := ClassifyAll([]string{jar, unpacked, filepath.Join(base, "missing")})
	Sync(settings, entries, false)

	if !util.PathExists(filepath.Join(modsDir, "mod.jar")) {
		t.Error("prebuilt mod file was not copied")
	}
	if !util.PathExists(filepath.Join(modsDir, "unpacked", "sprites", "a.png")) {
		t.Error("mod directory was not copied recursively")
	}
	if util.PathExists(filepath.Join(modsDir, "missing")) {
		t.Error("an invalid mod path must be skipped, not staged")
	}
}

func TestSync_JavaProjectCopiesNewestJar(t *testing.T) {
	base := t.TempDir()
	modsDir := filepath.Join(base, "mods")
	if err := os.Mkdir(modsDir, 0755); err != nil {
		t.Fatal(err)
	}

	project := filepath.Join(base, "javamod")
	libs := BuildOutputDir(project)
	if err := os.MkdirAll(libs, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, version.BuildDescriptor), []byte("// gradle"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(libs, "javamod.jar"), []byte("built"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := &config.Settings{ModsDir: modsDir}
	// rebuild=false: copy the existing build output without running gradle.
	Sync(settings, ClassifyAll([]string{project}), false)

	if !util.PathExists(filepath.Join(modsDir, "javamod.jar")) {
		t.Error("the Java project's built jar was not staged")
	}
}

func TestSync_JavaProjectWithoutBuildOutput(t *testing.T) {
	base := t.TempDir()
	modsDir := filepath.Join(base, "mods")
	if err := os.Mkdir(modsDir, 0755); err != nil {
		t.Fatal(err)
	}
	project := filepath.Join(base, "javamod")
	if err := os.Mkdir(project, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, version.BuildDescriptor), []byte("// gradle"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := &config.Settings{ModsDir: modsDir}
	// Reported, not fatal: Sync must come back without staging anything.
	Sync(settings, ClassifyAll([]string{project}), false)

	entries, err := os.ReadDir(modsDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("mods dir contains %d entries, want 0", len(entries))
	}
}

func TestSync_Concurrent(t *testing.T) {
	base := t.TempDir()
	modsDir := filepath.Join(base, "mods")
	if err := os.Mkdir(modsDir, 0755); err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, name := range []string{"a.jar", "b.jar", "c.jar"} {
		p := filepath.Join(base, name)
		if err := os.WriteFile(p, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	settings := &config.Settings{ModsDir: modsDir, BuildModsConcurrently: true}
	Sync(settings, ClassifyAll(paths), false)

	for _, name := range []string{"a.jar", "b.jar", "c.jar"} {
		if !util.PathExists(filepath.Join(modsDir, name)) {
			t.Errorf("mod %s was not staged", name)
		}
	}
}
