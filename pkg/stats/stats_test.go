package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/stats"
)

func TestMeanVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5, stats.Mean(x), 1e-9)
	assert.InDelta(t, 4, stats.Variance(x), 1e-9)
	assert.InDelta(t, 2, stats.Std(x), 1e-9)

	assert.Zero(t, stats.Mean(nil))
	assert.Zero(t, stats.Variance(nil))
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 3, stats.Median([]float64{5, 1, 3}), 1e-9)
	assert.InDelta(t, 2.5, stats.Median([]float64{4, 1, 2, 3}), 1e-9)
	assert.Zero(t, stats.Median(nil))
}

func TestPercentile(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 1, stats.Percentile(x, 0), 1e-9)
	assert.InDelta(t, 3, stats.Percentile(x, 50), 1e-9)
	assert.InDelta(t, 5, stats.Percentile(x, 100), 1e-9)
	assert.InDelta(t, 2, stats.Percentile(x, 25), 1e-9)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1, stats.Correlation(x, []float64{2, 4, 6, 8}), 1e-9)
	assert.InDelta(t, -1, stats.Correlation(x, []float64{8, 6, 4, 2}), 1e-9)
	assert.Zero(t, stats.Correlation(x, []float64{5, 5, 5, 5}))
}
