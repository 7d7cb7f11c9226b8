package aqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		aqi      int
		expected Category
	}{
		{0, Good},
		{50, Good},
		{51, Moderate},
		{100, Moderate},
		{101, UnhealthyForSensitiveGroups},
		{150, UnhealthyForSensitiveGroups},
		{151, Unhealthy},
		{200, Unhealthy},
		{201, VeryUnhealthy},
		{300, VeryUnhealthy},
		{301, Hazardous},
		{9999, Hazardous},
		{-1, Unclassified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.aqi), "aqi %d", tt.aqi)
	}
}

func TestClassify_Labels(t *testing.T) {
	assert.Equal(t, "Good", Classify(0).Label)
	assert.Equal(t, "Green", Classify(0).Color)
	assert.Equal(t, "Red", Classify(151).Color)
	assert.Equal(t, "Maroon", Classify(301).Color)
	assert.Equal(t, Category{Label: "Error", Color: "Error", Descriptor: "Error"}, Classify(-20))
}

func TestCategory_FontColor(t *testing.T) {
	assert.Equal(t, "black", Moderate.FontColor())
	assert.Equal(t, "white", Good.FontColor())
	assert.Equal(t, "white", Hazardous.FontColor())
}
