package sales

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSale_StatusPredicates(t *testing.T) {
	tests := []struct {
		status    string
		completed bool
		cancelled bool
	}{
		{StatusCompleted, true, false},
		{StatusCancelled, false, true},
		{"Pending", false, false},
		{"completed", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			s := Sale{Status: tt.status}
			assert.Equal(t, tt.completed, s.IsCompleted())
			assert.Equal(t, tt.cancelled, s.IsCancelled())
		})
	}
}

func TestSale_ValueFloat(t *testing.T) {
	s := newSale("1", "A", "D", "P", "150.75", StatusCompleted, july(1))
	assert.InDelta(t, 150.75, s.ValueFloat(), 1e-9)
}

func TestDate_DaysUntil(t *testing.T) {
	assert.Equal(t, 9, july(1).DaysUntil(july(10)))
	assert.Equal(t, 0, july(5).DaysUntil(july(5)))
	assert.Equal(t, -4, july(5).DaysUntil(july(1)))
	// crosses a leap day
	assert.Equal(t, 2, NewDate(2024, time.February, 28).DaysUntil(NewDate(2024, time.March, 1)))
	assert.Equal(t, 366, NewDate(2024, time.January, 1).DaysUntil(NewDate(2025, time.January, 1)))
}

func TestDate_DaysUntilLongSpans(t *testing.T) {
	// 2000 years are exactly five 400-year Gregorian cycles of 146097 days
	typo := NewDate(24, time.July, 1)
	actual := NewDate(2024, time.July, 1)
	assert.Equal(t, 730485, typo.DaysUntil(actual))
	assert.Equal(t, -730485, actual.DaysUntil(typo))

	assert.Equal(t, 118338, NewDate(1700, time.January, 1).DaysUntil(NewDate(2024, time.January, 1)))
}

func TestDate_Ordering(t *testing.T) {
	assert.True(t, july(1).Before(july(2)))
	assert.False(t, july(2).Before(july(2)))
	assert.True(t, july(3).After(july(2)))
	assert.Equal(t, time.July, july(3).Month())
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(july(4))
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-07-04"`), &d))
	assert.Equal(t, 0, july(4).DaysUntil(d))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"04/07/2024"`), &d))
}
