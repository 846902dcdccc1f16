package pointview

// Default view parameters.
const (
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultThickness = 4
)

// ViewState is the current window resolution and point size. The Loop owns
// it and updates it only on resize; the Renderer reads a copy every frame.
type ViewState struct {
	Width, Height int

	// Thickness is the half-size of a point square: each point covers
	// 2*Thickness+1 pixels per side.
	Thickness int
}

// DefaultViewState returns a 640×480 view with 4-pixel thickness.
func DefaultViewState() ViewState {
	return ViewState{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Thickness: DefaultThickness,
	}
}

// Side returns the side length of a point square in pixels.
func (v ViewState) Side() int {
	return 2*v.Thickness + 1
}
