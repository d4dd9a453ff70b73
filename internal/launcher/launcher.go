// Package launcher starts the scanner program once the camera
// preflight has passed, with an explicit environment instead of
// whatever the shell happened to export.
package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

type Launcher struct {
	Logger *zap.Logger
	// Command and Args name the scanner binary and its fixed arguments,
	// e.g. "python" and ["-u", "dev_live_scan_cv.py"]. The device flags
	// are appended by Argv.
	Command string
	Args    []string
	// PassEnv lists environment keys copied from this process into the
	// child; everything else is withheld.
	PassEnv []string
	// Extra holds additional KEY=VALUE pairs for the child.
	Extra []string
}

// Argv is the full argument list for the scanner: the fixed args plus
// the camera flags the scanner expects.
func (l *Launcher) Argv(dev camera.Device) []string {
	args := make([]string, 0, len(l.Args)+4)
	args = append(args, l.Args...)
	args = append(args, "--ip", dev.Host, "--port", strconv.Itoa(dev.Port))
	return args
}

// Env builds the child environment: only the allow-listed keys plus
// the Extra pairs. Keys absent from this process are skipped silently.
func (l *Launcher) Env() []string {
	env := make([]string, 0, len(l.PassEnv)+len(l.Extra)+1)
	for _, k := range l.PassEnv {
		if v, ok := os.LookupEnv(k); ok {
			env = append(env, k+"="+v)
		}
	}
	// PATH stays so the interpreter can find its own tooling.
	if v, ok := os.LookupEnv("PATH"); ok {
		env = append(env, "PATH="+v)
	}
	env = append(env, l.Extra...)
	return env
}

// Launch runs the scanner until it exits or ctx is cancelled, streaming
// its output lines into the log. The child's exit error is returned
// as-is so the caller can report the exit code.
func (l *Launcher) Launch(ctx context.Context, dev camera.Device) error {
	if l.Command == "" {
		return fmt.Errorf("no scanner command configured")
	}

	cmd := exec.CommandContext(ctx, l.Command, l.Argv(dev)...)
	cmd.Env = l.Env()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", l.Command, err)
	}
	l.Logger.Info("scanner_started",
		zap.String("cmd", l.Command),
		zap.Strings("args", l.Argv(dev)),
		zap.Int("pid", cmd.Process.Pid),
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go l.drain("scanner_stdout", stdout, &wg)
	go l.drain("scanner_stderr", stderr, &wg)
	wg.Wait()

	err = cmd.Wait()
	if err != nil {
		l.Logger.Warn("scanner_exited", zap.Error(err))
	} else {
		l.Logger.Info("scanner_exited_clean")
	}
	return err
}

func (l *Launcher) drain(name string, r io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 256*1024)
	for sc.Scan() {
		l.Logger.Info(name, zap.String("line", sc.Text()))
	}
}
