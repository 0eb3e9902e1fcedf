// /internal/launcher/launcher.go
package launcher

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BalaM314/MindustryLauncher/internal/config"
	"github.com/BalaM314/MindustryLauncher/internal/format"
	"github.com/BalaM314/MindustryLauncher/internal/log"
	"github.com/BalaM314/MindustryLauncher/internal/mods"
	"github.com/BalaM314/MindustryLauncher/internal/version"
)

// State is the single launcher-wide record threaded through every operation.
type State struct {
	Settings *config.Settings
	Version  *version.Version
	Pipeline *format.Pipeline

	// ModEntries is re-classified on every launch. Watchers established at
	// startup keep the classification from that moment.
	ModEntries []mods.Entry

	child Child // nil before first launch and right after a kill
	// buildMods makes the next mod sync rebuild Java projects instead of
	// copying prebuilt jars. Mutated by restart requests.
	buildMods bool
}

// Supervisor owns the game process lifecycle: launch, restart, interactive
// commands and watch-triggered restarts.
type Supervisor struct {
	mu    sync.Mutex
	state *State

	// restarting guards against overlapping restart requests: rapid
	// filesystem events coalesce instead of racing.
	restarting atomic.Bool

	spawn    SpawnFunc
	syncMods func(st *State, rebuild bool)
	exit     func(code int)
	console  io.Writer
	now      func() time.Time
}

// NewSupervisor wires a supervisor around the given state.
func NewSupervisor(state *State) *Supervisor {
	return &Supervisor{
		state:    state,
		spawn:    spawn,
		syncMods: syncMods,
		exit:     os.Exit,
		console:  os.Stdout,
		now:      time.Now,
	}
}

// syncMods re-classifies the external mod list and stages it. Classification
// is fresh on every launch; only the watchers keep the startup-time view.
func syncMods(st *State, rebuild bool) {
	st.ModEntries = mods.ClassifyAll(st.Settings.ExternalMods)
	mods.Sync(st.Settings, st.ModEntries, rebuild)
}

// Launch syncs mods, opens a fresh log file and spawns the game process. The
// child's exit terminates the launcher with the child's own exit code unless
// the child was released by a restart first.
func (s *Supervisor) Launch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.launchLocked()
}

func (s *Supervisor) launchLocked() error {
	st := s.state

	s.syncMods(st, st.buildMods)
	st.buildMods = false

	logFile, err := s.openLogFile()
	if err != nil {
		log.Warn("Game output will not be logged: %v", err)
	}

	args := composeArgs(st.Settings, st.Version)
	log.Info("Launching %s", st.Version.DisplayName())
	log.Debug("java %v", args)

	child, stdout, stderr, err := s.spawn("java", args)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return fmt.Errorf("could not launch the game: %w", err)
	}
	st.child = child

	var pipes sync.WaitGroup
	pipes.Add(2)
	go s.pipeOutput(stdout, logFile, &pipes)
	go s.pipeOutput(stderr, logFile, &pipes)
	if logFile != nil {
		// The file belongs to this launch's streams, not to the state: a
		// restart must not cut off the old child's final lines.
		go func() {
			pipes.Wait()
			logFile.Close()
		}()
	}
	go func() {
		err := child.Wait()
		// Serialize with restarts: a release that is mid-teardown when the
		// child exits must win, or the dying predecessor would take the
		// launcher down with it.
		s.mu.Lock()
		released := child.Released()
		s.mu.Unlock()
		if released {
			return
		}
		code := exitCode(err)
		if code == 0 {
			log.Info("Game exited cleanly.")
		} else {
			log.Error("Game exited with code %d.", code)
		}
		s.exit(code)
	}()
	return nil
}

// composeArgs builds the java argv: settings JVM args, CLI passthrough JVM
// args, the jar, then settings and CLI game arguments.
func composeArgs(settings *config.Settings, v *version.Version) []string {
	args := make([]string, 0, len(settings.JvmArgs)+len(settings.CLIJvmArgs)+len(settings.GameArgs)+len(settings.CLIGameArgs)+2)
	args = append(args, settings.JvmArgs...)
	args = append(args, settings.CLIJvmArgs...)
	args = append(args, "-jar", v.JarPath())
	args = append(args, settings.GameArgs...)
	args = append(args, settings.CLIGameArgs...)
	return args
}

// Restart tears down the current child and launches a replacement. At most
// one of rebuildMods/recompile may be set. The old child is released before
// it is signaled, so its exit handler can never fire against the launcher.
// There is no wait for the old process to actually die.
func (s *Supervisor) Restart(rebuildMods, recompile bool) error {
	if rebuildMods && recompile {
		log.Error("Rebuild and recompile cannot be combined; pick one.")
		return nil
	}
	if !s.restarting.CompareAndSwap(false, true) {
		log.Warn("A restart is already in progress, ignoring this one.")
		return nil
	}
	defer s.restarting.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state

	s.stopChildLocked()

	if recompile {
		if st.Version.IsSourceTree {
			if err := st.Version.Compile(); err != nil {
				return fmt.Errorf("recompile failed: %w", err)
			}
		} else {
			log.Error("%s was not built from a source directory, cannot recompile.", st.Version.DisplayName())
		}
	}

	st.buildMods = rebuildMods
	log.Info("Restarting...")
	return s.launchLocked()
}

// Exit stops the child and terminates the launcher cleanly.
func (s *Supervisor) Exit() {
	s.mu.Lock()
	s.stopChildLocked()
	s.mu.Unlock()
	s.exit(0)
}

func (s *Supervisor) stopChildLocked() {
	child := s.state.child
	if child == nil {
		return
	}
	child.Release()
	if err := child.Terminate(); err != nil {
		log.Warn("Could not terminate the old game process: %v", err)
	}
	s.state.child = nil
}

// pipeOutput relays one output stream line by line through the format
// pipeline. Each launch gets its own pipe goroutines and log file; they end
// when the stream closes with the process.
func (s *Supervisor) pipeOutput(r io.Reader, logFile *os.File, done *sync.WaitGroup) {
	defer done.Done()
	pipeline := s.state.Pipeline

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		console, logLine := pipeline.Process(scanner.Text())
		fmt.Fprintln(s.console, console)
		if logFile != nil {
			fmt.Fprintln(logFile, logLine)
		}
	}
}

// openLogFile opens a fresh log file named after the wall-clock spawn time.
// The previous launch's file is not touched here; its own pipe goroutines
// close it once its streams drain.
func (s *Supervisor) openLogFile() (*os.File, error) {
	if !s.state.Settings.Logging.Enabled {
		return nil, nil
	}
	return os.Create(filepath.Join(s.state.Settings.Logging.Dir, logFileName(s.now())))
}

// logFileName renders the per-launch file name. Components are not
// zero-padded, which Go layout strings cannot express for 24h clocks.
func logFileName(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d--%d-%d-%d.txt",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
