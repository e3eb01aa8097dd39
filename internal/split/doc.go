// Package split provides the orchestration logic for splitting multi-track
// GPX files into single-route files.
//
// # Splitter
//
// A Splitter processes one input file through an explicit state machine:
//
//	Start → Parsed → Splitting → WaypointsWritten → Done
//
// with Failed absorbing errors raised before the waypoint phase ends. Each
// route is copied out of the source document, colored, boxed, and written
// as its own file; top-level waypoints are collected into
// All-Waypoints.gpx in the same output directory.
//
// # Manager
//
// The Manager runs one Splitter per queued input file:
//
//	manager := split.NewManager(settings, func(event split.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Initialize(ctx, "/routes/vakantie.gpx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = manager.StartSplits(ctx)
//
// # Concurrency
//
// Queued inputs are processed in parallel up to
// Settings.MaxConcurrentSplits; each individual file is split
// sequentially, track by track.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package split
