package app

import (
	"time"

	"github.com/zerocore-ai/rxtui/backend"
	"github.com/zerocore-ai/rxtui/component"
)

// TerminalMode selects how the app occupies the terminal.
type TerminalMode int

const (
	// AlternateScreen is full-screen alternate-buffer rendering; content
	// disappears when the app exits. The default.
	AlternateScreen TerminalMode = iota
	// Inline renders within the main terminal buffer below the cursor, so
	// content can persist in scrollback after exit.
	Inline
)

// InlineHeight is the height policy for Inline mode.
type InlineHeight struct {
	// Kind selects which field below is meaningful.
	Kind InlineHeightKind
	// Fixed is the exact row count when Kind == InlineHeightFixed.
	Fixed int
	// Max caps growth when Kind == InlineHeightContent; zero means
	// unbounded.
	Max int
	// Min is the floor when Kind == InlineHeightFill.
	Min int
}

type InlineHeightKind int

const (
	// InlineHeightContent grows to fit rendered content, optionally capped
	// by Max.
	InlineHeightContent InlineHeightKind = iota
	// InlineHeightFixed always reserves exactly Fixed rows.
	InlineHeightFixed
	// InlineHeightFill fills the terminal below the cursor, at least Min
	// rows.
	InlineHeightFill
)

// InlineConfig configures Inline mode.
type InlineConfig struct {
	Height         InlineHeight
	CursorVisible  bool
	PreserveOnExit bool
	MouseCapture   bool
}

// DefaultInlineConfig mirrors the original's content-height, no-cursor,
// preserve-on-exit, no-mouse-capture defaults.
func DefaultInlineConfig() InlineConfig {
	return InlineConfig{
		Height:         InlineHeight{Kind: InlineHeightContent},
		PreserveOnExit: true,
	}
}

// RenderConfig holds rendering settings — spec §6's "render_config
// setter". App reads only PollInterval. DoubleBuffering,
// TerminalOptimizations and CellDiffing are stored but not consulted:
// every frame draws into the double buffer and writes only changed cells.
type RenderConfig struct {
	DoubleBuffering      bool
	TerminalOptimizations bool
	CellDiffing          bool
	PollInterval         time.Duration
}

// DefaultRenderConfig sets every flag on with a 16ms poll — the
// default poll_duration_ms for draining events (§5).
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		DoubleBuffering:       true,
		TerminalOptimizations: true,
		CellDiffing:           true,
		PollInterval:          16 * time.Millisecond,
	}
}

// DebugRenderConfig leaves every flag off with a 16ms poll. Since App does
// not read the flags, it renders the same way as DefaultRenderConfig.
func DebugRenderConfig() RenderConfig {
	return RenderConfig{PollInterval: 16 * time.Millisecond}
}

// Config gathers everything needed to run one App.
type Config struct {
	Backend backend.Backend
	Root    component.Component
	Mode    TerminalMode
	Inline  InlineConfig
	Render  RenderConfig
}
