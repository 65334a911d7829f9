package subscribers

const (
	AirPurifier    = "AirPurifier"
	TrafficControl = "TrafficControl"
	CitizenApp     = "CitizenApp"
)

// DefaultOrder is the order subscribers are attached to the sensor.
var DefaultOrder = []string{AirPurifier, TrafficControl, CitizenApp}

// DefaultPolicies returns the built-in policies keyed by name.
func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		AirPurifier: {
			Name:      AirPurifier,
			Threshold: 150,
			High:      "Turning ON purifiers",
			Normal:    "Air is clean, purifiers OFF",
		},
		TrafficControl: {
			Name:      TrafficControl,
			Threshold: 200,
			High:      "Reducing traffic flow",
			Normal:    "Normal traffic",
		},
		CitizenApp: {
			Name:      CitizenApp,
			Threshold: 100,
			High:      "Warning: Limit outdoor activities",
			Normal:    "Safe to go outside",
		},
	}
}
