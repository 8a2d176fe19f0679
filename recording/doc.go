// Package recording captures a rendered frame as a flat list of drawing
// commands that can be stored, shipped and played back to backends.
//
// # Architecture
//
//   - Record: turns a dxfrender.Frame into a Recording
//   - Recording: commands in drawing order plus a shared color pool
//   - Backend: consumes commands for one output format
//
// Commands follow the order in which the renderer emitted primitives, so a
// backend that draws them in sequence reproduces the frame's stacking.
//
// # Basic Usage
//
//	frame, _ := dxfrender.Render(s, dxfrender.WithSurface(800, 600))
//	rec := recording.Record(frame)
//
//	// Persist
//	data, _ := recording.Marshal(rec)
//
//	// Play back
//	b, _ := recording.NewBackend("raster")
//	_ = rec.Playback(b)
//
// # Wire Format
//
// Encode writes a four byte magic, one version byte and the msgpack
// encoding of the Recording. Decode rejects other magics and versions.
//
// # Backend Registration
//
// Backends register themselves from init, like database/sql drivers:
//
//	import _ "github.com/wieslawsoltes/DxfParser-sub001/recording/backends/raster"
package recording
