package stopedit

// MarkerHalfWidth is the visual radius of a stop marker in pixels.
// Rendered stop positions are shifted left by this amount so the marker
// is centered over its offset.
const MarkerHalfWidth = 5.0

// Limits bounds the pixel positions a stop may be dragged to.
type Limits struct {
	Min  float64 // Leftmost pixel position
	Max  float64 // Rightmost pixel position
	Drop float64 // Vertical distance reserved for drag-to-remove
}

// NewLimits returns the drag limits for a track of the given width.
func NewLimits(width, drop float64) Limits {
	return Limits{
		Min:  -MarkerHalfWidth,
		Max:  width - MarkerHalfWidth,
		Drop: drop,
	}
}

// ToPixelOffset converts a normalized offset to the marker's pixel position
// on a track of the given width.
func ToPixelOffset(offset, width float64) float64 {
	return width*offset - MarkerHalfWidth
}

// ToNormalizedOffset converts a marker pixel position back to a normalized
// offset. It is the inverse of ToPixelOffset and is used when a stop is moved.
func ToNormalizedOffset(pixel, width float64) float64 {
	return (pixel + MarkerHalfWidth) / width
}

// AddOffset converts a raw click position to a normalized offset.
// Unlike ToNormalizedOffset it applies no marker compensation: a new stop
// is anchored at the click point itself.
func AddOffset(pixel, width float64) float64 {
	return pixel / width
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(min(v, hi), lo)
}
