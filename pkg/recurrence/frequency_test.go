package recurrence_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcal/pkg/recurrence"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    recurrence.Frequency
		wantErr bool
	}{
		{"none", recurrence.None, false},
		{"", recurrence.None, false},
		{"daily", recurrence.Daily, false},
		{"Weekly", recurrence.Weekly, false},
		{" monthly ", recurrence.Monthly, false},
		{"yearly", recurrence.Yearly, false},
		{"hourly", recurrence.None, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := recurrence.ParseFrequency(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, recurrence.ErrUnknownFrequency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrequencyJSON(t *testing.T) {
	type payload struct {
		Frequency recurrence.Frequency `json:"repeat_frequency"`
	}

	b, err := json.Marshal(payload{Frequency: recurrence.Monthly})
	require.NoError(t, err)
	assert.JSONEq(t, `{"repeat_frequency":"monthly"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"repeat_frequency":"yearly"}`), &p))
	assert.Equal(t, recurrence.Yearly, p.Frequency)

	assert.Error(t, json.Unmarshal([]byte(`{"repeat_frequency":"every 3 hours"}`), &p))

	_, err = json.Marshal(payload{Frequency: recurrence.Frequency(9)})
	assert.Error(t, err)
}

func TestParseClampMode(t *testing.T) {
	m, err := recurrence.ParseClampMode("")
	require.NoError(t, err)
	assert.Equal(t, recurrence.ClampRolling, m)

	m, err = recurrence.ParseClampMode("anchored")
	require.NoError(t, err)
	assert.Equal(t, recurrence.ClampAnchored, m)
	assert.Equal(t, "anchored", m.String())

	_, err = recurrence.ParseClampMode("sideways")
	assert.Error(t, err)
}
