// Package collection models an e-waste pickup request on the client side:
// the devices being handed over and the EcoPoints they are estimated to
// earn. The actual lifecycle (pending/collected/processing/completed) is
// tracked by the backend.
package collection

import "math"

type DeviceType string

const (
	DeviceLaptop      DeviceType = "laptop"
	DeviceDesktop     DeviceType = "desktop"
	DeviceSmartphone  DeviceType = "smartphone"
	DeviceTablet      DeviceType = "tablet"
	DeviceMonitor     DeviceType = "monitor"
	DeviceAccessories DeviceType = "accessories"
)

type Condition string

const (
	ConditionWorking     Condition = "working"
	ConditionMinorIssues Condition = "minor-issues"
	ConditionBroken      Condition = "broken"
	ConditionPartsOnly   Condition = "parts-only"
)

// Base points per device, before the condition multiplier.
var basePoints = map[DeviceType]int64{
	DeviceLaptop:      150,
	DeviceDesktop:     200,
	DeviceSmartphone:  80,
	DeviceTablet:      100,
	DeviceMonitor:     120,
	DeviceAccessories: 30,
}

var conditionMultiplier = map[Condition]float64{
	ConditionWorking:     1.2,
	ConditionMinorIssues: 1.0,
	ConditionBroken:      0.8,
	ConditionPartsOnly:   0.6,
}

// Item is one device entry in a pickup request.
type Item struct {
	Type            DeviceType `json:"type"`
	Brand           string     `json:"brand,omitempty"`
	Model           string     `json:"model,omitempty"`
	Condition       Condition  `json:"condition"`
	Quantity        int        `json:"quantity"`
	EstimatedPoints int64      `json:"estimated_points"`
}

// EstimatePoints computes the EcoPoints a device entry is worth:
// base points for the type, scaled by condition and quantity, rounded to
// the nearest point. Unknown types estimate to zero; unknown conditions
// fall back to the neutral multiplier.
func EstimatePoints(deviceType DeviceType, condition Condition, quantity int) int64 {
	if quantity < 1 {
		return 0
	}
	base, ok := basePoints[deviceType]
	if !ok {
		return 0
	}
	mult, ok := conditionMultiplier[condition]
	if !ok {
		mult = 1.0
	}
	return int64(math.Round(float64(base) * mult * float64(quantity)))
}

// TotalEstimate sums the estimates over a request's items.
func TotalEstimate(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.EstimatedPoints
	}
	return total
}
