package popup

import "math"

// Deceleration rates used to project where a fling would come to rest.
// Values match the fast and normal scroll deceleration presets.
const (
	DecelerationRateFast   = 0.99
	DecelerationRateNormal = 0.998
)

// TranslationProgress converts a vertical translation into a fraction of
// maxExtent. A zero extent yields zero progress.
//
// Callers feeding it from a live gesture must zero the gesture's translation
// after each call so a delta is never counted twice; see
// PanGesture.consumeProgress.
func TranslationProgress(deltaY, maxExtent float64) float64 {
	if maxExtent == 0 {
		return 0
	}
	return deltaY / maxExtent
}

// ProjectedStopPoint estimates where a fling released at location with the
// given velocity (points per second) would settle under exponential
// deceleration. yOffset is added to the location's Y before projecting.
func ProjectedStopPoint(velocity, location Vec2, decelerationRate, yOffset float64) Vec2 {
	loc := Vec2{X: location.X, Y: location.Y + yOffset}
	k := 1000 * math.Log(decelerationRate)
	if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return loc
	}
	return loc.Sub(velocity.Scale(1 / k))
}

// ShouldDismiss decides whether a released gesture completes the dismissal.
//
// Top dismisses when the projection lands above the half-way mark. Bottom and
// Center dismiss when the projection lands below it or when more than half of
// the transition has already been dragged through.
func ShouldDismiss(pos Position, projected Vec2, maxExtent, percentComplete float64) bool {
	if pos == PositionTop {
		return projected.Y < maxExtent/2
	}
	return projected.Y > maxExtent/2 || percentComplete > 0.5
}
