package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CapsAtEight(t *testing.T) {
	series := make(map[string]float64)
	for i := 1; i <= 10; i++ {
		series[fmt.Sprintf("Cat %02d", i)] = float64(i * 10)
	}

	slices := Aggregate(series, CategoryPalette)

	require.Len(t, slices, 8)
	for i := 0; i < 7; i++ {
		assert.Equal(t, float64((10-i)*10), slices[i].Value)
	}
	assert.Equal(t, OthersLabel, slices[7].Label)
	assert.Equal(t, 30.0+20.0+10.0, slices[7].Value)

	total := 0.0
	for _, s := range slices {
		total += s.Percent
	}
	assert.InDelta(t, 100, total, 1e-9)
}

func TestAggregate_KeepsSmallSeries(t *testing.T) {
	slices := Aggregate(map[string]float64{
		"Libros":    500,
		"Papelería": 300,
		"Arte":      200,
		"Vacía":     0,
	}, CategoryPalette)

	require.Len(t, slices, 3)
	assert.Equal(t, []string{"Libros", "Papelería", "Arte"}, []string{slices[0].Label, slices[1].Label, slices[2].Label})
	assert.InDelta(t, 50, slices[0].Percent, 1e-9)
	assert.Equal(t, CategoryPalette[2], slices[2].Color)
}

func TestAggregate_ExactlyEightNotAggregated(t *testing.T) {
	series := make(map[string]float64)
	for i := 1; i <= 8; i++ {
		series[fmt.Sprintf("P%d", i)] = float64(i)
	}
	slices := Aggregate(series, ProductPalette)

	require.Len(t, slices, 8)
	for _, s := range slices {
		assert.NotEqual(t, OthersLabel, s.Label)
	}
	// palette cycles past its length
	assert.Equal(t, ProductPalette[0], slices[len(ProductPalette)].Color)
}

func TestAggregate_MergesExistingOthers(t *testing.T) {
	series := map[string]float64{OthersLabel: 1000}
	for i := 1; i <= 9; i++ {
		series[fmt.Sprintf("Cat %d", i)] = float64(i)
	}

	slices := Aggregate(series, CategoryPalette)

	require.Len(t, slices, 8)
	labels := 0
	for _, s := range slices {
		if s.Label == OthersLabel {
			labels++
		}
	}
	assert.Equal(t, 1, labels)
	assert.Equal(t, "Cat 9", slices[0].Label)
	assert.Equal(t, OthersLabel, slices[7].Label)
	assert.Equal(t, 1000.0+2+1, slices[7].Value)
}

func TestAggregate_AllNonPositive(t *testing.T) {
	assert.Empty(t, Aggregate(map[string]float64{"A": 0, "B": -3}, CategoryPalette))
}

func TestRenderPie(t *testing.T) {
	png, err := RenderPie(Aggregate(map[string]float64{"A": 1, "B": 3}, CategoryPalette))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
