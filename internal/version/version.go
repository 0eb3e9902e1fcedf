// /internal/version/version.go
package version

import (
	"fmt"
	"path/filepath"

	"github.com/BalaM314/MindustryLauncher/internal/fetch"
	"github.com/BalaM314/MindustryLauncher/internal/util"
)

const (
	// BuildDescriptor marks a directory as a Mindustry source tree.
	BuildDescriptor = "build.gradle"
	// sourceJarRelPath is where the desktop jar lands inside a source tree
	// after `gradlew desktop:dist`.
	sourceJarRelPath = "desktop/build/libs/Mindustry.jar"
)

// Version describes one concrete thing to launch. It is immutable once
// constructed by Resolve.
type Version struct {
	// ArtifactPath is a custom file path, a source tree directory, or the
	// computed <versionsDir>/v<prefix><number>.jar path.
	ArtifactPath string
	// IsCustomNamed versions come from the settings name→path map and are
	// never auto-downloadable.
	IsCustomNamed bool
	// IsSourceTree means ArtifactPath is a directory containing the build
	// descriptor; the jar lives at a fixed relative path inside it.
	IsSourceTree bool
	// Family and Number are set only for family-resolved versions.
	Family *Family
	Number string
}

// JarPath returns the path of the executable jar.
func (v *Version) JarPath() string {
	if v.IsSourceTree {
		return filepath.Join(v.ArtifactPath, filepath.FromSlash(sourceJarRelPath))
	}
	return v.ArtifactPath
}

// Exists reports whether the jar is present on disk.
func (v *Version) Exists() bool {
	return util.PathExists(v.JarPath())
}

// DisplayName returns a human-readable identifier for log messages.
func (v *Version) DisplayName() string {
	switch {
	case v.IsSourceTree:
		return fmt.Sprintf("[source directory at %s]", v.ArtifactPath)
	case v.IsCustomNamed:
		return "[custom version]"
	default:
		return fmt.Sprintf("%s-%s", v.Family.Name, v.Number)
	}
}

// DownloadURL resolves the final asset URL for a family version. Calling it
// on a custom version, or on one still carrying the latest token, is a
// programming defect and fails loudly.
func (v *Version) DownloadURL() (string, error) {
	if v.Family == nil {
		return "", fmt.Errorf("internal error: download URL requested for non-family version %s", v.DisplayName())
	}
	if v.Number == LatestToken {
		return "", fmt.Errorf("internal error: download URL requested before %q was resolved to a concrete number", LatestToken)
	}
	return fetch.ResolveRedirect(v.Family.urlTemplate(v.Number))
}
