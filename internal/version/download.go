// /internal/version/download.go
package version

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
)

// downloadClient follows redirects, unlike fetch.Client: the resolved asset
// URL may still bounce through a CDN.
var downloadClient = resty.New()

// Download fetches the jar for a family-resolved version into ArtifactPath.
// The body is streamed to a sibling .tmp file and renamed into place only on
// success, so a failed download never leaves a partial file at the final
// path. The .tmp file may remain after a failure; re-running Download
// overwrites it.
func (v *Version) Download() error {
	url, err := v.DownloadURL()
	if err != nil {
		return err
	}

	resp, err := downloadClient.R().SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return fmt.Errorf("download of %s failed: %w", v.DisplayName(), err)
	}
	body := resp.RawBody()
	defer body.Close()
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP %d", v.DisplayName(), resp.StatusCode())
	}

	tmpPath := v.ArtifactPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", tmpPath, err)
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, "downloading "+v.DisplayName())
	_, copyErr := io.Copy(io.MultiWriter(out, bar), body)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("download of %s failed: %w", v.DisplayName(), copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("could not write %s: %w", tmpPath, closeErr)
	}

	if err := os.Rename(tmpPath, v.ArtifactPath); err != nil {
		return fmt.Errorf("could not move downloaded jar into place: %w", err)
	}
	return nil
}
