// /internal/launcher/commands.go
package launcher

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BalaM314/MindustryLauncher/internal/log"
)

const commandHelp = `Commands:
  restart, rs    restart the game
  rebuild, rb    rebuild external mods, then restart
  recompile, rc  recompile the source directory, then restart
  pass, p, -     forward the rest of the line to the game
  help, h, ?     show this summary
  exit, e, quit, q  stop the game and exit`

// RunCommandLoop reads interactive commands from r until it is exhausted.
// Intended to run against the launcher's stdin for the process lifetime.
func (s *Supervisor) RunCommandLoop(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.HandleCommand(scanner.Text())
	}
}

// HandleCommand dispatches one interactive command line. The first
// whitespace-delimited token selects the command, case-insensitively.
// Unknown commands are reported and ignored.
func (s *Supervisor) HandleCommand(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	command, rest, _ := strings.Cut(trimmed, " ")

	switch strings.ToLower(command) {
	case "restart", "rs":
		s.restartOrDie(false, false)
	case "rebuild", "rb":
		s.restartOrDie(true, false)
	case "recompile", "rc":
		s.restartOrDie(false, true)
	case "help", "h", "?":
		fmt.Fprintln(s.console, commandHelp)
	case "exit", "e", "quit", "q":
		log.Info("Exiting.")
		s.Exit()
	case "pass", "p", "-":
		s.mu.Lock()
		child := s.state.child
		s.mu.Unlock()
		if child == nil {
			log.Error("The game is not running, cannot pass input to it.")
			return
		}
		if err := child.WriteLine(rest); err != nil {
			log.Error("Could not pass input to the game: %v", err)
		}
	default:
		log.Error("Unknown command %q. Type \"help\" for a list.", command)
	}
}

// restartOrDie runs a restart and treats its failure (compile error, spawn
// error) as fatal, since the old child is already gone.
func (s *Supervisor) restartOrDie(rebuildMods, recompile bool) {
	if err := s.Restart(rebuildMods, recompile); err != nil {
		log.Error("Restart failed: %v", err)
		s.exit(1)
	}
}
