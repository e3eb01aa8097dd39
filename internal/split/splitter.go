package split

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/dverhagen/gpx-splitter/internal/gpx"
	ioutils "github.com/dverhagen/gpx-splitter/internal/io"
	"github.com/dverhagen/gpx-splitter/internal/palette"
)

// WaypointsFileName is the file all top-level waypoints are collected in.
const WaypointsFileName = "All-Waypoints.gpx"

// State identifies where a split run stands in its lifecycle.
type State int

const (
	StateStart State = iota
	StateParsed
	StateSplitting
	StateWaypointsWritten
	StateDone
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateParsed:
		return "parsed"
	case StateSplitting:
		return "splitting"
	case StateWaypointsWritten:
		return "waypoints-written"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// transitions lists the legal edges of the run lifecycle. Failed absorbs
// errors up to and including the splitting phase; Done and Failed are
// terminal.
var transitions = map[State][]State{
	StateStart:            {StateParsed, StateFailed},
	StateParsed:           {StateSplitting, StateFailed},
	StateSplitting:        {StateWaypointsWritten, StateFailed},
	StateWaypointsWritten: {StateDone},
	StateDone:             {},
	StateFailed:           {},
}

func allowedTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Result summarizes one split run.
type Result struct {
	InputPath        string
	OutputDir        string
	TracksTotal      int
	TracksWritten    int
	WaypointsTotal   int
	WaypointsWritten bool

	// Failures holds per-file write errors that did not stop the run.
	Failures []error
}

// Splitter turns one multi-track GPX file into a directory of single-route
// files plus a waypoint collection.
//
// A Splitter belongs to one run: its state machine only moves forward.
// Create a fresh one per input file. It is not safe for concurrent use.
type Splitter struct {
	creator    string
	colors     palette.Palette
	annotator  *Annotator
	onProgress func(ProgressEvent)
	state      State

	// now stamps the output directory name; tests pin it.
	now func() time.Time
}

// NewSplitter creates a Splitter for a single run. An empty creator or
// palette falls back to the defaults.
func NewSplitter(creator string, colors palette.Palette, onProgress func(ProgressEvent)) *Splitter {
	if creator == "" {
		creator = "gpx-splitter"
	}
	if len(colors) == 0 {
		colors = palette.Default()
	}
	return &Splitter{
		creator:    creator,
		colors:     colors,
		annotator:  NewAnnotator(nil),
		onProgress: onProgress,
		state:      StateStart,
		now:        time.Now,
	}
}

// State reports where the run currently stands.
func (s *Splitter) State() State {
	return s.state
}

// Run splits the file at path. The output directory is created next to the
// input, named after it with a timestamp suffix, and only after the input
// parsed. Tracks that fail to write are recorded on the Result and reported
// at error level; the run itself continues. Run returns an error only when
// nothing useful could happen at all: unreadable input, no output
// directory, or cancellation.
func (s *Splitter) Run(ctx context.Context, path string) (*Result, error) {
	result := &Result{InputPath: path}

	doc, err := gpx.ParseFile(path)
	if err != nil {
		s.fail(err)
		return result, err
	}
	s.transition(StateParsed)

	tracks := doc.Tracks()
	waypoints := doc.Waypoints()
	result.TracksTotal = len(tracks)
	result.WaypointsTotal = len(waypoints)
	s.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d route(s) and %d waypoint(s) in %s", len(tracks), len(waypoints), filepath.Base(path)),
		Level:   LevelInfo,
	})

	outDir := s.outputDir(path)
	if err := ioutils.EnsureDir(outDir); err != nil {
		err = fmt.Errorf("create output directory: %w", err)
		s.fail(err)
		return result, err
	}
	result.OutputDir = outDir
	s.transition(StateSplitting)

	if len(tracks) == 0 {
		s.progress(ProgressEvent{Message: fmt.Sprintf("No routes found in %s", filepath.Base(path)), Level: LevelInfo})
	}

	names := newNameAllocator()
	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			s.fail(err)
			return result, err
		}

		ordinal := i + 1
		fileName := names.claim(routeFileName(gpx.TrackName(track), ordinal), ordinal)
		color := s.colors.Color(i)

		route := gpx.CloneElement(track)
		s.annotator.Annotate(route, color)

		data, err := gpx.Serialize(gpx.BuildTrackDocument(route, s.creator))
		if err != nil {
			s.reportFailure(result, fmt.Errorf("serialize route %s: %w", fileName, err))
			continue
		}
		outPath := filepath.Join(outDir, fileName+".gpx")
		if err := ioutils.WriteFile(ctx, outPath, data); err != nil {
			s.reportFailure(result, fmt.Errorf("write %s: %w", outPath, err))
			continue
		}
		result.TracksWritten++
		s.progress(ProgressEvent{Message: fmt.Sprintf("Wrote route %s (color %s)", fileName+".gpx", color), Level: LevelVerbose})
	}

	switch {
	case result.TracksTotal == 0:
		// Nothing to summarize; the waypoint phase may still produce output.
	case result.TracksWritten == result.TracksTotal:
		s.progress(ProgressEvent{
			Message: fmt.Sprintf("Successfully split %d route(s) into %s", result.TracksWritten, outDir),
			Level:   LevelSuccess,
		})
	default:
		s.progress(ProgressEvent{
			Message: fmt.Sprintf("Finished %s, %d of %d route(s) failed", filepath.Base(path), result.TracksTotal-result.TracksWritten, result.TracksTotal),
			Level:   LevelWarning,
		})
	}

	s.writeWaypoints(ctx, waypoints, outDir, result)
	s.transition(StateWaypointsWritten)

	s.transition(StateDone)
	return result, nil
}

// writeWaypoints collects the document's top-level waypoints into a single
// file. Zero waypoints skip the file entirely; a write failure is recorded
// but does not fail the run.
func (s *Splitter) writeWaypoints(ctx context.Context, waypoints []*etree.Element, outDir string, result *Result) {
	if len(waypoints) == 0 {
		s.progress(ProgressEvent{Message: "No waypoints found; " + WaypointsFileName + " not created", Level: LevelInfo})
		return
	}

	data, err := gpx.Serialize(gpx.BuildWaypointDocument(waypoints, s.creator))
	if err != nil {
		s.reportFailure(result, fmt.Errorf("serialize waypoints: %w", err))
		return
	}
	outPath := filepath.Join(outDir, WaypointsFileName)
	if err := ioutils.WriteFile(ctx, outPath, data); err != nil {
		s.reportFailure(result, fmt.Errorf("write %s: %w", outPath, err))
		return
	}
	result.WaypointsWritten = true
	s.progress(ProgressEvent{Message: fmt.Sprintf("%d waypoint(s) saved to %s", len(waypoints), outPath), Level: LevelSuccess})
}

// outputDir derives <input_basename>_<timestamp> alongside the input file.
func (s *Splitter) outputDir(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stamp := s.now().Format("20060102_150405")
	return filepath.Join(filepath.Dir(inputPath), base+"_"+stamp)
}

// transition advances the state machine. An edge outside the allowed set is
// a programming error, not a runtime condition.
func (s *Splitter) transition(to State) {
	if !allowedTransition(s.state, to) {
		panic(fmt.Sprintf("illegal state transition %s -> %s", s.state, to))
	}
	s.state = to
}

func (s *Splitter) fail(err error) {
	s.transition(StateFailed)
	s.progress(ProgressEvent{Message: fmt.Sprintf("Error: %v", err), Level: LevelError})
}

func (s *Splitter) reportFailure(result *Result, err error) {
	result.Failures = append(result.Failures, err)
	s.progress(ProgressEvent{Message: fmt.Sprintf("Error: %v", err), Level: LevelError})
}

func (s *Splitter) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}
