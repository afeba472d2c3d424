package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"iso with millis", `"2023-10-15T00:00:00.000Z"`, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2023-10-15T02:00:00+02:00"`, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"bare date", `"2023-10-15"`, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1697328000000`, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday-ish"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &ts))
}

func TestTimestampRejectsOutOfRangeMillis(t *testing.T) {
	for _, raw := range []string{`1e300`, `-1e300`, `253402300800000`, `-62135596800001`} {
		var ts Timestamp
		err := json.Unmarshal([]byte(raw), &ts)
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "must be a date string or epoch milliseconds")
	}

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`253402300799999`), &ts))
	assert.Equal(t, 9999, ts.UTC().Year())
}

func TestTimestampMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		At Timestamp `json:"at"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":null}`, string(b))

	b, err = json.Marshal(NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02T03:04:05Z"`, string(b))
}

func TestNormalizedFillsListsAndDedupesSkills(t *testing.T) {
	cv := &CV{
		Title:  "x",
		Skills: []string{"Go", " Go ", "SQL", "", "Go"},
		CustomSections: []CustomSection{
			{ID: "c1", Title: "Awards"},
		},
	}
	n := cv.Normalized()

	assert.NotNil(t, n.Experience)
	assert.NotNil(t, n.Education)
	assert.NotNil(t, n.Projects)
	assert.NotNil(t, n.Certifications)
	assert.NotNil(t, n.Languages)
	assert.NotNil(t, n.References)
	assert.NotNil(t, n.Publications)
	assert.NotNil(t, n.CustomSections[0].Items)
	assert.Equal(t, []string{"Go", "SQL"}, n.Skills)

	// receiver untouched
	assert.Nil(t, cv.Experience)
	assert.Len(t, cv.Skills, 5)
	assert.Nil(t, cv.CustomSections[0].Items)
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"20px", 20.0 / 96, false},
		{"96", 1, false},
		{"1in", 1, false},
		{"2.54cm", 1, false},
		{"25.4mm", 1, false},
		{"72pt", 1, false},
		{" 0 ", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5px", 0, true},
		{"10em", 0, true},
		{"nan", 0, true},
		{"NaNpx", 0, true},
		{"inf", 0, true},
		{"+Infmm", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPrintOptionsResolve(t *testing.T) {
	var nilOpts *PrintOptions
	got, err := nilOpts.Resolve()
	require.NoError(t, err)
	assert.Equal(t, FormatA4, got.Format)
	assert.False(t, got.Landscape)
	assert.True(t, got.PrintBackground)
	assert.Equal(t, Margin{Top: "20px", Right: "20px", Bottom: "20px", Left: "20px"}, got.Margin)

	got, err = (&PrintOptions{Format: "letter", Landscape: true, Margin: Margin{Top: "1cm"}}).Resolve()
	require.NoError(t, err)
	assert.Equal(t, FormatLetter, got.Format)
	assert.True(t, got.Landscape)
	assert.Equal(t, "1cm", got.Margin.Top)
	assert.Equal(t, "20px", got.Margin.Left)

	got, err = (&PrintOptions{Format: "Tabloid"}).Resolve()
	require.NoError(t, err)
	assert.Equal(t, FormatA4, got.Format)

	for _, bad := range []string{"wide", "nan", "NaNpx", "inf", "+Infmm"} {
		_, err = (&PrintOptions{Margin: Margin{Bottom: bad}}).Resolve()
		assert.Error(t, err, bad)
	}
}

func TestPaperSize(t *testing.T) {
	w, h := FormatLegal.PaperSize()
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 14.0, h)
	w, h = PaperFormat("nope").PaperSize()
	assert.Equal(t, 8.27, w)
	assert.Equal(t, 11.69, h)
}
