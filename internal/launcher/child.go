// /internal/launcher/child.go
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync/atomic"
	"syscall"
)

// Child is one spawned game process. Releasing a child detaches its exit
// handling, so a terminated predecessor can never take the launcher down
// while its replacement is starting.
type Child interface {
	// Wait blocks until the process exits.
	Wait() error
	// Terminate sends a graceful termination signal. It does not wait for
	// the process to actually die.
	Terminate() error
	// WriteLine forwards one line to the process's stdin.
	WriteLine(line string) error
	// Release detaches exit handling for this child.
	Release()
	// Released reports whether Release has been called.
	Released() bool
}

// SpawnFunc starts a child process and returns it together with its stdout
// and stderr streams.
type SpawnFunc func(name string, args []string) (Child, io.Reader, io.Reader, error)

type osChild struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	released atomic.Bool
}

// spawn is the production SpawnFunc.
func spawn(name string, args []string) (Child, io.Reader, io.Reader, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, nil, fmt.Errorf("could not start %s: %w", name, err)
	}
	return &osChild{cmd: cmd, stdin: stdin}, stdout, stderr, nil
}

func (c *osChild) Wait() error { return c.cmd.Wait() }

func (c *osChild) Terminate() error {
	if err := c.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return c.cmd.Process.Kill()
	}
	return nil
}

func (c *osChild) WriteLine(line string) error {
	if c.stdin == nil {
		return errors.New("child stdin is not writable")
	}
	_, err := io.WriteString(c.stdin, line+"\n")
	return err
}

func (c *osChild) Release()       { c.released.Store(true) }
func (c *osChild) Released() bool { return c.released.Load() }

// exitCode maps a Wait error to the child's exit code. Spawn-level failures
// that carry no code map to 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
