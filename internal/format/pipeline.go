// /internal/format/pipeline.go

// Package format turns raw game output lines into what the console and the
// log file actually receive: an ordered pipeline of pure text transforms
// (censoring, timestamping) with a final console-only highlighting stage.
package format

import (
	"os/user"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/BalaM314/MindustryLauncher/internal/config"
)

// Transform rewrites one decoded output line.
type Transform func(line string) string

var (
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	debugStyle = lipgloss.NewStyle().Faint(true)

	// Mindustry UUIDs and USIDs are short base64 tokens with padding.
	uuidPattern = regexp.MustCompile(`[A-Za-z0-9+/]{10,}={1,2}`)
)

// Pipeline applies shared transforms to each line, then splits into a
// highlighted console rendition and a plain log-file rendition.
type Pipeline struct {
	shared []Transform
	now    func() time.Time
}

// NewPipeline builds the stage list from the logging settings. Censoring
// stages are included only when the corresponding redaction flag is set.
func NewPipeline(logging config.LoggingSettings) *Pipeline {
	p := &Pipeline{now: time.Now}
	if logging.RemoveUsername {
		if u, err := user.Current(); err == nil && u.Username != "" {
			name := u.Username
			p.shared = append(p.shared, func(line string) string {
				return strings.ReplaceAll(line, name, "[username]")
			})
		}
	}
	if logging.RemoveUUIDs {
		p.shared = append(p.shared, func(line string) string {
			return uuidPattern.ReplaceAllString(line, "[uuid]")
		})
	}
	p.shared = append(p.shared, p.timestamp)
	return p
}

// Process runs one line through the pipeline and returns the console
// rendition (colored) and the log-file rendition (plain).
func (p *Pipeline) Process(line string) (console, logLine string) {
	for _, t := range p.shared {
		line = t(line)
	}
	return highlight(line), line
}

func (p *Pipeline) timestamp(line string) string {
	return p.now().Format("[15:04:05] ") + line
}

// highlight colors a line based on Mindustry's log tags.
func highlight(line string) string {
	switch {
	case strings.Contains(line, "[E]"):
		return errStyle.Render(line)
	case strings.Contains(line, "[W]"):
		return warnStyle.Render(line)
	case strings.Contains(line, "[D]"):
		return debugStyle.Render(line)
	default:
		return line
	}
}
