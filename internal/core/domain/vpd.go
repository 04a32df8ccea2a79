package domain

import "math"

// SaturationVaporPressure returns the saturation vapour pressure in kPa for a
// temperature in °C (Tetens form).
func SaturationVaporPressure(tempC float64) float64 {
	return 0.6108 * math.Exp(17.27*tempC/(tempC+237.3))
}

// VaporPressureDeficit returns the deficit in kPa for a temperature in °C and
// relative humidity in percent (0–100). The constants must stay exactly as they
// are so values match what the prediction model was trained on.
func VaporPressureDeficit(tempC, humidityPct float64) float64 {
	return SaturationVaporPressure(tempC) * (1 - humidityPct/100)
}

// Round3 rounds v to three decimals, the precision shown to users.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
