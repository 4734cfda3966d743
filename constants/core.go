package constants

import "time"

// Loop & Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// WindowTPS is the update rate of the desktop window backend
	WindowTPS = 60

	// MessageDuration is how long transient status messages stay visible
	MessageDuration = 3 * time.Second
)

// Generation Budgets
const (
	// DefaultPointsPerFrame is the number of chaos-game steps taken per frame
	DefaultPointsPerFrame = 600

	// MinPointsPerFrame is the lower bound for the '[' rate key
	MinPointsPerFrame = 75

	// MaxPointsPerFrame is the upper bound for the ']' rate key
	MaxPointsPerFrame = 9600

	// MaxPoints is the retained point history cap; generation idles when full
	MaxPoints = 400_000

	// TransientPoints is the number of leading points excluded from
	// statistical density checks while the walk settles onto the attractor
	TransientPoints = 10
)

// Interaction
const (
	// ToleranceMinPx is the smallest removal pick radius in surface pixels
	ToleranceMinPx = 4

	// ToleranceDivisor scales the pick radius with the surface: min(w,h)/divisor
	ToleranceDivisor = 40

	// ScrubDivisor sets the coarse view-scrub step: at least one point,
	// at most history/divisor per keypress
	ScrubDivisor = 40

	// MinScrubStep is the floor for a single view-scrub step
	MinScrubStep = 250
)

// Surface Defaults
const (
	// DefaultWindowPlotSize is the square plot edge of the desktop window
	DefaultWindowPlotSize = 600

	// StatusStripHeight is the pixel height of the window status strip
	StatusStripHeight = 18

	// AnchorRadiusPx is the marker disc radius on a 600px surface, scaled
	// proportionally on other surfaces with a floor of 2px
	AnchorRadiusPx = 5
)

// Audio Timings
const (
	AddBlipDuration  = 60 * time.Millisecond
	BlipAttack       = 5 * time.Millisecond
	BlipRelease      = 30 * time.Millisecond
	DeniedDuration   = 90 * time.Millisecond
	DeniedAttack     = 10 * time.Millisecond
	DeniedRelease    = 40 * time.Millisecond
	SpeakerBufferDur = 100 * time.Millisecond
)

// Web Mirror
const (
	// WebPushInterval is the cadence of state/point pushes to browser clients
	WebPushInterval = 100 * time.Millisecond

	// WebSendBuffer is the per-client outbound queue; slow clients drop frames
	WebSendBuffer = 32

	// WebMaxBatch caps points per binary push; backlogs catch up over ticks
	WebMaxBatch = 20_000

	// WebReadHeaderTimeout bounds header parsing on the http server
	WebReadHeaderTimeout = 5 * time.Second
)
