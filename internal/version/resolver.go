// /internal/version/resolver.go
package version

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BalaM314/MindustryLauncher/internal/config"
	"github.com/BalaM314/MindustryLauncher/internal/fetch"
	"github.com/BalaM314/MindustryLauncher/internal/util"
)

var (
	// ErrInvalidVersion means the identifier matched no custom name and no
	// family prefix/number combination.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrCustomVersionMissing means a custom-named version's path does not
	// exist. Custom versions are never downloaded.
	ErrCustomVersionMissing = errors.New("custom version path does not exist")
)

// Resolve maps a user-typed version identifier to a Version descriptor.
// Custom names take precedence over family matching. The latest token is
// replaced by a concrete number before any artifact path is computed.
func Resolve(versionString string, settings *config.Settings) (*Version, error) {
	if path, ok := settings.CustomVersions[versionString]; ok {
		return resolveCustom(versionString, path)
	}

	family, number, ok := matchFamily(versionString)
	if !ok {
		return nil, fmt.Errorf("%w: %q matches no known version format", ErrInvalidVersion, versionString)
	}

	if number == LatestToken {
		resolved, err := resolveLatest(family)
		if err != nil {
			return nil, fmt.Errorf("could not determine the latest %s version: %w", family.Name, err)
		}
		number = resolved
	}

	return &Version{
		ArtifactPath: filepath.Join(settings.VersionsDir, "v"+family.Prefix+number+".jar"),
		Family:       family,
		Number:       number,
	}, nil
}

func resolveCustom(name, path string) (*Version, error) {
	if !util.PathExists(path) {
		return nil, fmt.Errorf("%w: %q points to %s", ErrCustomVersionMissing, name, path)
	}
	v := &Version{ArtifactPath: path, IsCustomNamed: true}
	if util.IsDir(path) {
		if !util.PathExists(filepath.Join(path, BuildDescriptor)) {
			return nil, fmt.Errorf("%s has no %s, are you sure this is a source directory?", path, BuildDescriptor)
		}
		v.IsSourceTree = true
	}
	return v, nil
}

// resolveLatest follows the family's latest-release redirect and extracts the
// version number from the tag URL it lands on.
func resolveLatest(family *Family) (string, error) {
	target, err := fetch.ResolveRedirect(family.latestURL)
	if err != nil {
		return "", err
	}
	m := family.latestPattern.FindStringSubmatch(target)
	if m == nil {
		return "", fmt.Errorf("redirect target %q does not contain a version number", target)
	}
	return m[1], nil
}
