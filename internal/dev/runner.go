// Package dev implements the development environment setup and the package
// build step for the weather CLI.
package dev

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner executes external commands. It exists so tests can observe and fake
// toolchain invocations.
type Runner interface {
	// Run executes name with args, streaming output to stdout and stderr.
	// Extra environment entries are appended to the current process env.
	Run(ctx context.Context, stdout, stderr io.Writer, extraEnv []string, name string, args ...string) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes the command and waits for it to finish. The error is the
// command's own exit status, untranslated.
func (ExecRunner) Run(ctx context.Context, stdout, stderr io.Writer, extraEnv []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
