package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const defaultYAML = `app:
  port: 38471

open_jobs:
  feed_url: https://raw.githubusercontent.com/vanshb03/Summer2026-Internships/main/README.md
  refresh_hours: 12
  max_age_days: 0

extract:
  requests_per_sec: 2
  burst: 4
`

// EnsureUserConfig copies the packaged default config into the data dir on
// first run. When no packaged default exists (plain `go run`), the built-in
// defaults are written instead.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if errors.Is(err, os.ErrNotExist) {
		if werr := os.WriteFile(userPath, []byte(defaultYAML), 0o644); werr != nil {
			return "", werr
		}
		return userPath, nil
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
