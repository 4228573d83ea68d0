package forecast

import "math"

// maxMagnitude bounds plausible volume/monetary inputs. Anything larger is
// feed corruption and is zeroed alongside NaN and infinities so it cannot
// poison an aggregation pass.
const maxMagnitude = 1e15

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if math.Abs(v) > maxMagnitude {
		return 0
	}
	return v
}
