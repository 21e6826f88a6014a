package dev

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/sanbobsan/weather-cli/internal/build"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// entryPoint is the package built into the distributable binary.
const entryPoint = "./cmd/wthr"

// Packager rebuilds the dist directory from scratch and compiles the single
// distributable binary into it.
type Packager struct {
	dir    string
	runner Runner
	out    io.Writer
}

// NewPackager creates a Packager operating on the current working directory.
func NewPackager(runner Runner, out io.Writer) *Packager {
	return newPackagerWithDir(".", runner, out)
}

// newPackagerWithDir creates a Packager rooted at a custom directory (used for testing).
func newPackagerWithDir(dir string, runner Runner, out io.Writer) *Packager {
	return &Packager{dir: dir, runner: runner, out: out}
}

// Run wipes any previous dist directory, recreates it, and builds the binary
// at the fixed output path. The first failing step aborts the rest; no
// cleanup beyond the initial wipe is attempted.
func (p *Packager) Run(ctx context.Context) error {
	distDir := filepath.Join(p.dir, domain.DistDirName)

	if err := os.RemoveAll(distDir); err != nil {
		return zerr.Wrap(err, domain.ErrDistCleanFailed.Error())
	}

	if err := os.MkdirAll(distDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrDistCreateFailed.Error())
	}

	artifact := filepath.Join(p.dir, domain.DistPath())
	ldflags := "-s -w -X github.com/sanbobsan/weather-cli/internal/build.Version=" + build.Version

	err := p.runner.Run(ctx, p.out, p.out, nil,
		"go", "build",
		"-trimpath",
		"-ldflags", ldflags,
		"-o", artifact,
		entryPoint,
	)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageBuildFailed.Error())
	}

	_, _ = fmt.Fprintf(p.out, "Сборка завершена: %s\n", artifact)
	return nil
}
