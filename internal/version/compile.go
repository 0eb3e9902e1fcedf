// /internal/version/compile.go
package version

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Compile builds the desktop jar of a source-tree version by shelling out to
// the tree's gradle wrapper. Output is inherited so build progress is
// visible. There is no timeout; a hung build hangs the launcher.
func (v *Version) Compile() error {
	if !v.IsSourceTree {
		return fmt.Errorf("%s is not a source directory, nothing to compile", v.DisplayName())
	}

	wrapper := "gradlew"
	if runtime.GOOS == "windows" {
		wrapper = "gradlew.bat"
	}

	cmd := exec.Command(filepath.Join(v.ArtifactPath, wrapper), "desktop:dist")
	cmd.Dir = v.ArtifactPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("compiling %s failed: %w", v.DisplayName(), err)
	}

	if !v.Exists() {
		return fmt.Errorf("build finished but %s was not produced", v.JarPath())
	}
	return nil
}
