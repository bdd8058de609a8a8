package parameter

// ViewportSize is a named viewport preset in character cells
type ViewportSize struct {
	Name   string
	Width  int
	Height int
}

// Viewport presets selectable from the command line
var (
	ViewportTiny   = ViewportSize{Name: "tiny", Width: 40, Height: 15}
	ViewportSmall  = ViewportSize{Name: "small", Width: 60, Height: 22}
	ViewportNormal = ViewportSize{Name: "normal", Width: 75, Height: 30}
	ViewportBig    = ViewportSize{Name: "big", Width: 120, Height: 45}
)

// ViewportPresets lists presets in ascending size, used for name lookup
var ViewportPresets = []ViewportSize{
	ViewportTiny,
	ViewportSmall,
	ViewportNormal,
	ViewportBig,
}

// Viewport limits
const (
	// MinViewportDim is the smallest width or height accepted from config
	MinViewportDim = 1

	// MaxViewportDim bounds config values to something a terminal can show
	MaxViewportDim = 1000
)
