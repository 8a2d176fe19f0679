package recording

import (
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

// Backend consumes the commands of a recording for one output format.
//
// Playback calls Begin once, Draw for every command in order, then End.
// A backend that produces a byte stream also implements io.WriterTo.
type Backend interface {
	// Begin prepares a surface of the given size in screen units.
	Begin(width, height int) error

	// Draw executes one command. color is the resolved pool entry.
	Draw(cmd Command, color style.Color) error

	// End finishes the output. Results are available afterwards.
	End() error
}
