package render

import "github.com/gdamore/tcell/v2"

// Palette (Tokyo Night)
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Canvas background
	RgbGrid        = tcell.NewRGBColor(40, 42, 58)    // Placement guide dots
	RgbTag         = tcell.NewRGBColor(255, 165, 0)   // Orange handle
	RgbTagLinked   = tcell.NewRGBColor(125, 207, 255) // Handle carrying a url
	RgbPending     = tcell.NewRGBColor(144, 238, 144) // Unconfirmed tag
	RgbDragging    = tcell.NewRGBColor(255, 255, 0)   // Handle under the pointer
	RgbTooltip     = tcell.NewRGBColor(180, 180, 180) // Link text, no url
	RgbTooltipLink = tcell.NewRGBColor(140, 190, 255) // Link text with url

	RgbPromptBg     = tcell.NewRGBColor(40, 40, 60)
	RgbPromptLabel  = tcell.NewRGBColor(140, 140, 160)
	RgbPromptText   = tcell.NewRGBColor(255, 255, 255)
	RgbPromptActive = tcell.NewRGBColor(255, 165, 0)

	// Status bar backgrounds per state
	RgbStatusIdleBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusArmedBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusPendingBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusDragBg    = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)
	RgbStatusInfo      = tcell.NewRGBColor(180, 180, 180)
)
