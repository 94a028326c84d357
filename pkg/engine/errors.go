package engine

import "errors"

var (
	// ErrResourceCreation reports that the surface or a backend resource
	// (window, renderer, texture) could not be created.
	ErrResourceCreation = errors.New("engine: resource creation failed")
	// ErrPresentation reports a failed backend step during a frame: event
	// polling, input sampling, texture upload or present.
	ErrPresentation = errors.New("engine: presentation failed")
	// ErrUserCallback reports that the game's Create or Update failed.
	ErrUserCallback  = errors.New("engine: user callback failed")
	ErrInvalidConfig = errors.New("engine: invalid config")
	ErrNotReady      = errors.New("engine: not ready")
)

// Stop may be returned by Game.Update to end the loop as a normal
// termination. Start then returns nil.
var Stop = errors.New("engine: stop requested")
