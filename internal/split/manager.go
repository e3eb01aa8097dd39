package split

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dverhagen/gpx-splitter/internal/config"
	"github.com/dverhagen/gpx-splitter/internal/palette"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a split progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrNoInputs is returned when initialization finds no usable input files.
var ErrNoInputs = errors.New("no usable input files")

// Manager coordinates splitting one or more GPX files.
type Manager struct {
	settings *config.Settings
	colors   palette.Palette

	inputs  []string
	results []*Result
	runErrs []error

	totalFiles     int32
	completedFiles int32
	failedFiles    int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new split Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		onProgress: onProgress,
	}
}

// Initialize validates the input paths and prepares the color palette.
//
// The input holds one path per line; commas separate paths as well. Paths
// that do not exist, or point at directories, are reported and skipped.
func (m *Manager) Initialize(ctx context.Context, inputPaths string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	paths := m.parseInputPaths(inputPaths)

	var usable []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", path, err), Level: LevelError})
			continue
		}
		if info.IsDir() {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: is a directory", path), Level: LevelError})
			continue
		}
		usable = append(usable, path)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Queued %s", path), Level: LevelVerbose})
	}
	if len(usable) == 0 {
		return ErrNoInputs
	}

	colors, err := palette.Generate(m.settings.PaletteSize, nil)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.inputs = usable
	m.colors = colors
	m.totalFiles = int32(len(usable))
	m.mu.Unlock()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Ready to split %d file(s) with %d route colors", len(usable), len(colors)), Level: LevelInfo})
	return nil
}

// StartSplits runs one Splitter per queued input.
//
// A file that fails to split does not stop the others; its error is joined
// into the returned error after every input had its chance. Cancellation
// stops the whole group.
func (m *Manager) StartSplits(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentSplits)

	for _, input := range m.inputs {
		input := input // capture
		g.Go(func() error {
			return m.splitOne(ctx, input)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return errors.Join(m.runErrs...)
}

// GetProgress returns current split progress.
func (m *Manager) GetProgress() (completed, failed, total int32) {
	return atomic.LoadInt32(&m.completedFiles), atomic.LoadInt32(&m.failedFiles), m.totalFiles
}

// GetInputNames returns the queued input paths.
func (m *Manager) GetInputNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.inputs))
	copy(names, m.inputs)
	return names
}

// Results returns the per-input results recorded so far.
func (m *Manager) Results() []*Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]*Result, len(m.results))
	copy(results, m.results)
	return results
}

func (m *Manager) splitOne(ctx context.Context, path string) error {
	splitter := NewSplitter(m.settings.Creator, m.colors, m.onProgress)
	result, err := splitter.Run(ctx, path)

	m.mu.Lock()
	m.results = append(m.results, result)
	if err != nil && ctx.Err() == nil {
		m.runErrs = append(m.runErrs, fmt.Errorf("%s: %w", path, err))
	}
	m.mu.Unlock()

	if err != nil {
		atomic.AddInt32(&m.failedFiles, 1)
		if ctx.Err() != nil {
			return err
		}
		return nil // one bad input does not stop the others
	}

	atomic.AddInt32(&m.completedFiles, 1)
	return nil
}

func (m *Manager) parseInputPaths(input string) []string {
	lines := strings.Split(input, "\n")
	var paths []string
	for _, line := range lines {
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				paths = append(paths, part)
			}
		}
	}
	return paths
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
