package parameter

// Play field and frame pacing
const (
	// ScreenWidth and ScreenHeight are the logical play field size in units
	ScreenWidth  = 800
	ScreenHeight = 600

	// TargetFPS is the frame rate the loop is limited to; all motion is per frame
	TargetFPS = 60

	WindowTitle = "2D Space Battle"

	DefaultBackend = "terminal"
)

// Logging
const (
	LogDir       = "logs"
	LogFileName  = "space-battle.log"
	LogMaxSizeMB = 10
	LogLevel     = "info"
)

// SummaryIntervalFrames is how often the loop emits a debug frame summary
const SummaryIntervalFrames = TargetFPS * 5
