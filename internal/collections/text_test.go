package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNights(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     *int
	}{
		{name: "nights and days", duration: "10 Nights / 11 Days", want: intPtr(10)},
		{name: "nights only", duration: "7 Nights", want: intPtr(7)},
		{name: "singular night", duration: "1 night city break", want: intPtr(1)},
		{name: "lowercase no space", duration: "14nights", want: intPtr(14)},
		{name: "no night count", duration: "exploring for a while", want: nil},
		{name: "count overflows int", duration: "99999999999999999999 nights", want: nil},
		{name: "empty string", duration: "", want: nil},
		{name: "days only", duration: "10 Days", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNights(tt.duration)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   *float64
	}{
		{name: "single value", values: []float64{100}, want: floatPtr(100)},
		{name: "even count averages middle pair", values: []float64{100, 200}, want: floatPtr(150)},
		{name: "odd count takes middle", values: []float64{100, 200, 300}, want: floatPtr(200)},
		{name: "unsorted input", values: []float64{300, 100, 200}, want: floatPtr(200)},
		{name: "empty", values: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Median(tt.values)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{300, 100, 200}
	Median(values)
	assert.Equal(t, []float64{300, 100, 200}, values)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Sri Lanka", want: "sri-lanka"},
		{in: "  Sri   Lanka  ", want: "sri-lanka"},
		{in: "Germany", want: "germany"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Full board", capitalize("full board"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Flights", capitalize("Flights"))
}
