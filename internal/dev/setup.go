package dev

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// Setup creates the development environment directory and installs the tools
// listed in the requirements manifest into it.
type Setup struct {
	dir    string
	runner Runner
	out    io.Writer
}

// NewSetup creates a Setup operating on the current working directory.
func NewSetup(runner Runner, out io.Writer) *Setup {
	return newSetupWithDir(".", runner, out)
}

// newSetupWithDir creates a Setup rooted at a custom directory (used for testing).
func newSetupWithDir(dir string, runner Runner, out io.Writer) *Setup {
	return &Setup{dir: dir, runner: runner, out: out}
}

// Run performs the environment setup. Creating the environment directory is
// idempotent: an existing directory is left alone. Any failing step aborts
// the rest and its error propagates untranslated.
func (s *Setup) Run(ctx context.Context) error {
	envDir := filepath.Join(s.dir, domain.EnvDirName)
	binDir := filepath.Join(envDir, "bin")

	if _, err := os.Stat(envDir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(binDir, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrEnvDirCreateFailed.Error())
		}
		_, _ = fmt.Fprintf(s.out, "Окружение %s создано\n", domain.EnvDirName)
	}

	specs, err := readManifest(filepath.Join(s.dir, domain.ManifestFileName))
	if err != nil {
		return err
	}

	// The environment is "activated" for the installer invocations of this
	// run; a subprocess cannot mutate the parent shell.
	absBin, err := filepath.Abs(binDir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEnvDirCreateFailed.Error())
	}
	env := []string{"GOBIN=" + absBin}

	for _, spec := range specs {
		if err := s.runner.Run(ctx, s.out, s.out, env, "go", "install", spec); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrToolInstallFailed.Error()), "tool", spec)
		}
	}

	_, _ = fmt.Fprintf(s.out, "Окружение готово. Для активации выполните:\n  export PATH=\"$PWD/%s/bin:$PATH\"\n", domain.EnvDirName)
	return nil
}

// readManifest parses the requirements manifest: one tool spec per line,
// blank lines and # comments ignored.
func readManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var specs []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}

	return specs, scanner.Err()
}
