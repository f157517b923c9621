// Package gen contains generator tasks consumed by the magefiles, most
// notably the provisioning of the embedded tailwindcss release binaries.
package gen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/aexvir/harness"
	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/mod/semver"

	"github.com/aexvir/tailwindcli"
	"github.com/aexvir/tailwindcli/embedded"
	"github.com/aexvir/tailwindcli/platform"
)

const releaseURLFormat = "https://github.com/tailwindlabs/tailwindcss/releases/download/v%s/%s"

// ProvisionConfig holds the configuration for embedded binary provisioning.
type ProvisionConfig struct {
	version     string
	destination string
	platforms   []platform.Platform
}

// ProvisionOpt is a function that modifies ProvisionConfig.
type ProvisionOpt func(*ProvisionConfig)

// WithToolVersion overrides the tailwindcss version to download.
// Defaults to the version pinned by the tailwindcli module.
func WithToolVersion(version string) ProvisionOpt {
	return func(c *ProvisionConfig) {
		c.version = version
	}
}

// WithDestination overrides the directory the binaries are written to.
func WithDestination(dir string) ProvisionOpt {
	return func(c *ProvisionConfig) {
		c.destination = dir
	}
}

// WithPlatforms limits provisioning to a subset of platforms; useful for
// quick local iteration where only the host platform's binary is needed.
func WithPlatforms(platforms ...platform.Platform) ProvisionOpt {
	return func(c *ProvisionConfig) {
		c.platforms = platforms
	}
}

// EmbeddedBinaries returns a harness task that downloads the official
// tailwindcss release binary for every supported platform into the embed
// directory, replacing whatever is there. Run it before building a release
// so the artifact ships the real binaries.
func EmbeddedBinaries(opts ...ProvisionOpt) harness.Task {
	conf := ProvisionConfig{
		version:     tailwindcli.ToolVersion(),
		destination: filepath.FromSlash("embedded/bin"),
		platforms:   platform.All(),
	}

	for _, opt := range opts {
		opt(&conf)
	}

	return func(ctx context.Context) error {
		if !semver.IsValid("v" + conf.version) {
			return fmt.Errorf("invalid tailwindcss version %q", conf.version)
		}

		if err := os.MkdirAll(conf.destination, 0o755); err != nil {
			return fmt.Errorf("failed to create destination folder %s: %w", conf.destination, err)
		}

		logstep(fmt.Sprintf("provisioning tailwindcss v%s binaries", conf.version))

		for _, plat := range conf.platforms {
			asset := embedded.AssetName(plat)
			url := fmt.Sprintf(releaseURLFormat, conf.version, asset)

			if err := download(ctx, url, filepath.Join(conf.destination, asset)); err != nil {
				return fmt.Errorf("failed to provision %s: %w", asset, err)
			}
		}

		return nil
	}
}

// download fetches a release asset to a local destination, overwriting any
// previous copy so a version bump always refreshes the assets.
func download(ctx context.Context, url, destination string) (err error) {
	logdetail(fmt.Sprintf("downloading %s", url))

	start := time.Now()
	defer func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			color.Red("     ✘ %s", elapsed)
			return
		}
		color.Green("     ✔ %s", elapsed)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("received unexpected response when downloading binary: http%d", resp.StatusCode)
	}

	data, finish := progress(resp.Body, resp.ContentLength)
	defer finish()

	out, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destination, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, data); err != nil {
		return fmt.Errorf("failed to copy data to file %s: %w", destination, err)
	}

	return nil
}

// progress wraps an io.Reader to display a progress bar when running in a
// terminal. Returns the wrapped reader and a function to finalize the
// progress display.
func progress(reader io.Reader, size int64) (io.Reader, func()) {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return reader, func() {}
	}

	bar := pb.
		New64(size).
		SetTemplate(
			pb.ProgressBarTemplate(
				color.New(color.FgHiBlack).Sprint(
					`   └ {{string . "prefix"}}{{counters . }}` +
						` {{bar . "[" "=" ">" " " "]" }} {{percent . }}` +
						` {{speed . }} {{string . "suffix"}}`,
				),
			),
		).
		SetRefreshRate(time.Second / 60).
		SetMaxWidth(100).
		Start()

	return bar.NewProxyReader(reader), func() { bar.Finish() }
}

func logstep(text string) {
	fmt.Println(
		color.BlueString(" •"),
		color.New(color.FgHiBlack).Sprint(text),
	)
}

func logdetail(text string) {
	fmt.Println(
		color.New(color.FgHiBlack).Sprint("   └"),
		color.New(color.FgHiBlack).Sprint(text),
	)
}
