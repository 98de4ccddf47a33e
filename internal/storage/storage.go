package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/loftwing/launchcore/pkg/flight"
)

// SimStorageType names a CSV dataset written by a simulation run.
type SimStorageType string

// Trajectory is the only dataset this engine persists: the 12-component
// flight state at every accepted integrator step.
const Trajectory SimStorageType = "TRAJECTORY"

// StorageHeaders gives the column names for each SimStorageType, in the
// exact order spec.md's persistence section names: t, Xp, Xv, Yp, Yv, Zp,
// Zv, phi, dphi, theta, dtheta, psi, dpsi.
var StorageHeaders = map[SimStorageType][]string{
	Trajectory: {
		"t", "Xp", "Xv", "Yp", "Yv", "Zp", "Zv",
		"phi", "dphi", "theta", "dtheta", "psi", "dpsi",
	},
}

// Storage writes one CSV dataset to disk under a run directory.
type Storage struct {
	mu       sync.RWMutex
	store    SimStorageType
	filePath string
	file     *os.File
	writer   *csv.Writer
}

// NewStorage opens (creating if necessary) the CSV file for store within
// runDir, which is created if it does not already exist.
func NewStorage(runDir string, store SimStorageType) (*Storage, error) {
	absDir, err := filepath.Abs(runDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for run directory %s: %w", runDir, err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create run directory %s: %w", absDir, err)
	}

	filePath := filepath.Join(absDir, fmt.Sprintf("%s.csv", strings.ToUpper(string(store))))

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create/open file %s: %w", filePath, err)
	}

	return &Storage{
		store:    store,
		filePath: filePath,
		file:     file,
		writer:   csv.NewWriter(file),
	}, nil
}

// Init truncates the file and writes the header row for this dataset.
func (s *Storage) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := s.file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}

	if err := s.writer.Write(StorageHeaders[s.store]); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	s.writer.Flush()
	return s.writer.Error()
}

// Write appends a row; len(data) must match the dataset's header count.
func (s *Storage) Write(data []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	headers := StorageHeaders[s.store]
	if len(data) != len(headers) {
		return fmt.Errorf("data length (%d) does not match headers length (%d)", len(data), len(headers))
	}

	if err := s.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	s.writer.Flush()
	return s.writer.Error()
}

// WriteState formats one flight.State at time t and appends it as a row.
func (s *Storage) WriteState(t float64, st flight.State) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return s.Write([]string{
		f(t), f(st.Xp), f(st.Xv), f(st.Yp), f(st.Yv), f(st.Zp), f(st.Zv),
		f(st.Phi), f(st.DPhi), f(st.Theta), f(st.DTheta), f(st.Psi), f(st.DPsi),
	})
}

// Close flushes and closes the underlying file.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writer != nil {
		s.writer.Flush()
		if err := s.writer.Error(); err != nil {
			return fmt.Errorf("failed to flush on close: %w", err)
		}
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// GetFilePath returns the path of the CSV file on disk.
func (s *Storage) GetFilePath() string {
	return s.filePath
}

// ReadAll reads every row, including the header row, from the dataset.
func (s *Storage) ReadAll() ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to seek to beginning: %w", err)
	}

	reader := csv.NewReader(s.file)
	allData, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	if len(allData) == 0 {
		return nil, fmt.Errorf("no data found in storage")
	}
	return allData, nil
}

// ReadHeadersAndData splits ReadAll's result into the header row and the
// remaining data rows.
func (s *Storage) ReadHeadersAndData() ([]string, [][]string, error) {
	allData, err := s.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return allData[0], allData[1:], nil
}

// WriteTrajectory is a convenience that opens Trajectory storage under
// runDir, writes its header and every recorded state, and closes it.
func WriteTrajectory(runDir string, result flight.Result) (string, error) {
	s, err := NewStorage(runDir, Trajectory)
	if err != nil {
		return "", err
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		return "", err
	}

	for i, st := range result.States {
		if err := s.WriteState(result.Times[i], st); err != nil {
			return "", err
		}
	}

	return s.GetFilePath(), nil
}
