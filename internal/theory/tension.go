package theory

import "math"

// Approximate unit weights (lbs per linear inch) for plain steel and
// nickel wound strings, keyed by gauge in inches. Values follow the
// published D'Addario XL charts.
var unitWeights = map[float64]float64{
	// Plain steel
	0.007: 0.00001086,
	0.008: 0.00001418,
	0.009: 0.00001795,
	0.010: 0.00002215,
	0.011: 0.00002680,
	0.012: 0.00003189,
	0.013: 0.00003744,

	// Wound
	0.017: 0.00005697,
	0.018: 0.00006277,
	0.020: 0.00008064,
	0.022: 0.00009744,
	0.024: 0.00011889,
	0.026: 0.00013958,
	0.028: 0.00016575,
	0.030: 0.00019056,
	0.032: 0.00021676,
	0.034: 0.00024765,
	0.036: 0.00027787,
	0.038: 0.00030932,
	0.040: 0.00034407,
	0.042: 0.00037912,
	0.044: 0.00041830,
	0.046: 0.00045610,
	0.048: 0.00049755,
	0.049: 0.00052210,
	0.050: 0.00053910,
	0.052: 0.00058444,
	0.054: 0.00063266,
	0.056: 0.00068132,
	0.059: 0.00075591,
	0.060: 0.00077890,
	0.062: 0.00083321,
	0.064: 0.00089291,
	0.066: 0.00094709,
	0.068: 0.00100780,
	0.070: 0.00106950,
	0.072: 0.00113008,
	0.074: 0.00119615,
	0.080: 0.00139945,
}

// Tension status thresholds in lbs.
const (
	tensionDanger = 30
	tensionHigh   = 25
	tensionLoose  = 12
)

// StringTension estimates the tension in lbs of a string of the given
// gauge (inches) at the given scale length (inches) tuned to note, using
// T = UW * (2*L*F)^2 / 386.4. A gauge missing from the chart uses the
// closest listed gauge; an unparseable note yields 0.
func StringTension(gauge, scaleLength float64, note string) float64 {
	n, err := ParseNote(note)
	if err != nil || !n.HasOctave {
		return 0
	}
	freq := n.Freq()

	uw, ok := unitWeights[gauge]
	if !ok {
		closest := 0.0
		for g := range unitWeights {
			if closest == 0 || math.Abs(g-gauge) < math.Abs(closest-gauge) {
				closest = g
			}
		}
		uw = unitWeights[closest]
	}

	tension := uw * math.Pow(2*scaleLength*freq, 2) / 386.4
	return math.Round(tension*100) / 100
}

// TensionStatus classifies a tension value for display.
func TensionStatus(tension float64) string {
	switch {
	case tension > tensionDanger:
		return "DANGER"
	case tension > tensionHigh:
		return "HIGH"
	case tension < tensionLoose:
		return "LOOSE"
	default:
		return "OK"
	}
}
