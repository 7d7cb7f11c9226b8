package aqi

// Category is the health risk band an AQI value falls into.
type Category struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Descriptor string `json:"descriptor"`
}

var (
	Good                        = Category{Label: "Good", Color: "Green", Descriptor: "Healthy"}
	Moderate                    = Category{Label: "Moderate", Color: "Yellow", Descriptor: "Healthy"}
	UnhealthyForSensitiveGroups = Category{Label: "Unhealthy for Sensitive Groups", Color: "Orange", Descriptor: "Unhealthy"}
	Unhealthy                   = Category{Label: "Unhealthy", Color: "Red", Descriptor: "Unhealthy"}
	VeryUnhealthy               = Category{Label: "Very Unhealthy", Color: "Purple", Descriptor: "Unhealthy"}
	Hazardous                   = Category{Label: "Hazardous", Color: "Maroon", Descriptor: "Unhealthy"}

	// Unclassified is returned for values no band covers.
	Unclassified = Category{Label: "Error", Color: "Error", Descriptor: "Error"}
)

// Classify maps an AQI value to its health category. Negative values yield
// Unclassified.
func Classify(aqi int) Category {
	switch {
	case aqi < 0:
		return Unclassified
	case aqi <= 50:
		return Good
	case aqi <= 100:
		return Moderate
	case aqi <= 150:
		return UnhealthyForSensitiveGroups
	case aqi <= 200:
		return Unhealthy
	case aqi <= 300:
		return VeryUnhealthy
	default:
		return Hazardous
	}
}

// FontColor is the text color readable on top of the category color.
func (c Category) FontColor() string {
	if c.Color == Moderate.Color {
		return "black"
	}
	return "white"
}
