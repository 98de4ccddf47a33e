package main

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// newRunDir creates a fresh, timestamp-keyed directory under
// ~/.launchrail for one invocation's output (trajectory CSVs, plots).
func newRunDir() (string, error) {
	homedir := os.Getenv("HOME")
	outputBase := filepath.Join(homedir, ".launchrail")
	if err := os.MkdirAll(outputBase, 0o755); err != nil {
		return "", fmt.Errorf("failed to create simulation base output directory %s: %w", outputBase, err)
	}

	ts := time.Now().UTC().Format(time.RFC3339Nano)
	sum := sha1.Sum([]byte(ts))
	runID := hex.EncodeToString(sum[:])[:8]

	runDir := filepath.Join(outputBase, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create simulation run directory %s: %w", runDir, err)
	}
	return runDir, nil
}

func main() {
	if err := Root(); err != nil {
		fmt.Fprintln(os.Stderr, "launchrail:", err)
		os.Exit(1)
	}
}
