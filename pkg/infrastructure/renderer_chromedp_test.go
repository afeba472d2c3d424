package infrastructure

import (
	"testing"

	"cv-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintParams(t *testing.T) {
	tests := []struct {
		name          string
		opts          *domain.PrintOptions
		width, height float64
		landscape     bool
		margins       [4]float64 // top, right, bottom, left
	}{
		{
			name:    "defaults",
			opts:    nil,
			width:   8.27,
			height:  11.69,
			margins: [4]float64{20.0 / 96, 20.0 / 96, 20.0 / 96, 20.0 / 96},
		},
		{
			name:    "letter",
			opts:    &domain.PrintOptions{Format: "Letter", Margin: domain.Margin{Top: "0", Right: "0", Bottom: "0", Left: "0"}},
			width:   8.5,
			height:  11,
			margins: [4]float64{0, 0, 0, 0},
		},
		{
			name:      "legal landscape",
			opts:      &domain.PrintOptions{Format: "legal", Landscape: true},
			width:     8.5,
			height:    14,
			landscape: true,
			margins:   [4]float64{20.0 / 96, 20.0 / 96, 20.0 / 96, 20.0 / 96},
		},
		{
			name:    "mixed units",
			opts:    &domain.PrintOptions{Format: "A4", Margin: domain.Margin{Top: "25.4mm", Right: "2.54cm", Bottom: "48px", Left: "36pt"}},
			width:   8.27,
			height:  11.69,
			margins: [4]float64{1, 1, 0.5, 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.opts.Resolve()
			require.NoError(t, err)

			p := printParams(opts)
			assert.Equal(t, tt.width, p.PaperWidth)
			assert.Equal(t, tt.height, p.PaperHeight)
			assert.Equal(t, tt.landscape, p.Landscape)
			assert.True(t, p.PrintBackground)
			assert.False(t, p.PreferCSSPageSize)
			assert.InDelta(t, tt.margins[0], p.MarginTop, 1e-9)
			assert.InDelta(t, tt.margins[1], p.MarginRight, 1e-9)
			assert.InDelta(t, tt.margins[2], p.MarginBottom, 1e-9)
			assert.InDelta(t, tt.margins[3], p.MarginLeft, 1e-9)
		})
	}
}
