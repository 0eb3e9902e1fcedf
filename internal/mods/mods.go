// /internal/mods/mods.go
package mods

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/BalaM314/MindustryLauncher/internal/config"
	"github.com/BalaM314/MindustryLauncher/internal/log"
	"github.com/BalaM314/MindustryLauncher/internal/util"
	"github.com/BalaM314/MindustryLauncher/internal/version"
)

// Kind classifies an external mod path.
type Kind int

const (
	// KindInvalid means the path does not exist.
	KindInvalid Kind = iota
	// KindFile is a prebuilt mod file (jar or zip).
	KindFile
	// KindDirectory is an unpacked mod directory.
	KindDirectory
	// KindJavaProject is a directory containing a gradle build descriptor.
	KindJavaProject
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindJavaProject:
		return "java source project"
	default:
		return "invalid"
	}
}

// Entry is one external mod path with its probed kind.
type Entry struct {
	Path string
	Kind Kind
}

// Classify probes path on the filesystem and decides which sync strategy
// applies to it.
func Classify(path string) Kind {
	info, err := os.Stat(path)
	if os.IsNotExist(err) || err != nil {
		return KindInvalid
	}
	if !info.IsDir() {
		return KindFile
	}
	if util.PathExists(filepath.Join(path, version.BuildDescriptor)) {
		return KindJavaProject
	}
	return KindDirectory
}

// ClassifyAll probes every configured external mod path. Classification is
// re-derived fresh on every launch, never cached across restarts.
func ClassifyAll(paths []string) []Entry {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{Path: p, Kind: Classify(p)})
	}
	return entries
}

// BuildOutputDir is where a Java mod project's built jars land.
func BuildOutputDir(projectPath string) string {
	return filepath.Join(projectPath, "build", "libs")
}

// Sync stages every external mod into the game's mods directory. Prebuilt
// files and directories are copied; Java projects are built first when
// rebuild is set, then their newest jar is copied. Individual mod failures
// are reported and skipped, never fatal. Mods are independent of each other,
// so the concurrent mode only changes latency and log interleaving.
func Sync(settings *config.Settings, entries []Entry, rebuild bool) {
	if settings.BuildModsConcurrently {
		var wg sync.WaitGroup
		for _, entry := range entries {
			wg.Add(1)
			go func(e Entry) {
				defer wg.Done()
				syncOne(settings, e, rebuild)
			}(entry)
		}
		wg.Wait()
		return
	}
	for _, entry := range entries {
		syncOne(settings, entry, rebuild)
	}
}

func syncOne(settings *config.Settings, entry Entry, rebuild bool) {
	var err error
	switch entry.Kind {
	case KindInvalid:
		log.Warn("Skipping mod %s: path does not exist", entry.Path)
		return
	case KindFile:
		err = util.CopyFile(entry.Path, filepath.Join(settings.ModsDir, filepath.Base(entry.Path)))
	case KindDirectory:
		err = util.CopyDir(entry.Path, filepath.Join(settings.ModsDir, filepath.Base(entry.Path)))
	case KindJavaProject:
		err = syncJavaProject(settings, entry.Path, rebuild)
	}
	if err != nil {
		log.Error("Could not sync mod %s: %v", entry.Path, err)
	} else {
		log.Debug("Synced mod %s (%s)", entry.Path, entry.Kind)
	}
}

func syncJavaProject(settings *config.Settings, projectPath string, rebuild bool) error {
	if rebuild {
		if err := buildJavaProject(projectPath); err != nil {
			return err
		}
	}
	jar, err := util.NewestFile(BuildOutputDir(projectPath), ".jar")
	if err != nil {
		return fmt.Errorf("no built jar found, run with rebuild first: %w", err)
	}
	return util.CopyFile(jar, filepath.Join(settings.ModsDir, filepath.Base(jar)))
}

func buildJavaProject(projectPath string) error {
	wrapper := "gradlew"
	if runtime.GOOS == "windows" {
		wrapper = "gradlew.bat"
	}
	log.Info("Building mod %s...", projectPath)
	cmd := exec.Command(filepath.Join(projectPath, wrapper), "jar")
	cmd.Dir = projectPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mod build failed: %w", err)
	}
	return nil
}
