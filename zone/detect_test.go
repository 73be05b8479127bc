// SPDX-License-Identifier: MIT
// Package zone_test covers exit detection: the hand-checked scan, tie-break,
// the η = 0 boundary, the band property on simulated paths, and the
// redraw-per-crossing rule for L.

package zone_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uzone/core"
	"github.com/katalvlaran/uzone/simulate"
	"github.com/katalvlaran/uzone/zone"
)

// scriptedSizer returns sizes from a fixed script, cycling, and counts draws.
type scriptedSizer struct {
	script []int
	draws  int
}

func (s *scriptedSizer) Draw(core.Source) int {
	L := s.script[s.draws%len(s.script)]
	s.draws++
	return L
}

// TestDetect_HandChecked walks a short path with alpha = 1, eta = 0.2
// (half-width 0.7).
func TestDetect_HandChecked(t *testing.T) {
	path := core.PricePath{10.0, 10.5, 10.71, 10.8, 11.2, 10.31, 10.29, 9.5}

	seq, err := zone.Detect(path, 1, 0.2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 6}, seq.Tau)
	assert.Equal(t, []float64{10, 11, 10}, seq.Levels)
	assert.Equal(t, []int{1, 1, 1}, seq.Sizes)
	assert.NoError(t, seq.Validate())
}

// TestDetect_NoExit returns the seed level only.
func TestDetect_NoExit(t *testing.T) {
	seq, err := zone.Detect(core.PricePath{5, 5.1, 4.9, 5.05}, 1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, []int{0}, seq.Tau)
	assert.Equal(t, []float64{5}, seq.Levels)
}

// TestInitialLevel covers nearest-level selection and the lower tie-break.
func TestInitialLevel(t *testing.T) {
	tests := []struct {
		name      string
		x0, alpha float64
		want      int64
	}{
		{"on grid", 10, 1, 10},
		{"nearer lower", 10.4, 1, 10},
		{"nearer upper", 10.6, 1, 11},
		{"exact tie goes lower", 0.25, 0.5, 0},
		{"exact tie goes lower 2", 10.5, 1, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, zone.InitialLevel(tc.x0, tc.alpha))
		})
	}

	seq, err := zone.Detect(core.PricePath{10.5}, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, seq.Levels[0])
}

// TestDetect_ZeroAversion: with eta = 0 the band is one tick wide and a
// crossing fires as soon as the price passes the midpoint.
func TestDetect_ZeroAversion(t *testing.T) {
	assert.Equal(t, 0.5, zone.HalfWidth(1, 0, 1))

	seq, err := zone.Detect(core.PricePath{10, 10.49, 10.51}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, seq.Tau)

	seq, err = zone.Detect(core.PricePath{10, 10.49, 10.51}, 1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, seq.Tau, "eta > 0 widens the band past the midpoint")
}

// TestDetect_RedrawPerCrossing: L is drawn once up front and once after
// every crossing, never while the price stays in its zone.
func TestDetect_RedrawPerCrossing(t *testing.T) {
	// alpha = 1, eta = 0: L=1 half-width 0.5, L=2 half-width 1.5.
	path := core.PricePath{10, 10.6, 10.9, 12.6, 12.7, 9.0}
	sizer := &scriptedSizer{script: []int{1, 2, 3}}

	seq, err := zone.Detect(path, 1, 0, zone.WithJumpSizer(sizer))
	require.NoError(t, err)

	// i=1: 10.6 > 10.5 → 11 (next L=2, band ±1.5)
	// i=3: 12.6 > 12.5 → 13 (next L=3, band ±2.5)
	// i=5: 9.0 < 10.5 → 10 (next L=1)
	assert.Equal(t, []int{0, 1, 3, 5}, seq.Tau)
	assert.Equal(t, []float64{10, 11, 13, 10}, seq.Levels)
	assert.Equal(t, []int{1, 2, 3, 1}, seq.Sizes)
	assert.Equal(t, seq.Len(), sizer.draws)
}

// TestDetect_BandProperty checks, on simulated paths, that nothing inside an
// interval leaves its band, that every recorded index does, and that levels
// move by exactly L ticks.
func TestDetect_BandProperty(t *testing.T) {
	weighted, err := zone.NewWeightedJump([]int{1, 2, 3}, []float64{0.6, 0.3, 0.1})
	require.NoError(t, err)

	cases := []struct {
		name  string
		alpha float64
		eta   float64
		sizer zone.JumpSizer
	}{
		{"constant eta 0.2", 0.05, 0.2, zone.ConstantJump(1)},
		{"constant eta 0", 0.05, 0, zone.ConstantJump(1)},
		{"weighted eta 0.4", 0.02, 0.4, weighted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				_, path, err := simulate.GBM(0.05, 2000, simulate.WithSeed(seed))
				require.NoError(t, err)

				seq, err := zone.Detect(path, tc.alpha, tc.eta,
					zone.WithJumpSizer(tc.sizer), zone.WithSeed(seed))
				require.NoError(t, err)
				require.NoError(t, seq.Validate())

				for j := 0; j < seq.Len(); j++ {
					end := len(path)
					if j+1 < seq.Len() {
						end = seq.Tau[j+1]
					}
					w := zone.HalfWidth(tc.alpha, tc.eta, seq.Sizes[j])
					for i := seq.Tau[j] + 1; i < end; i++ {
						require.LessOrEqual(t, math.Abs(path[i]-seq.Levels[j]), w+1e-9,
							"seed %d interval %d index %d stayed inside", seed, j, i)
					}
					if j+1 < seq.Len() {
						next := seq.Tau[j+1]
						assert.Greater(t, math.Abs(path[next]-seq.Levels[j]), w-1e-9, "exit at %d", next)
						step := math.Abs(seq.Levels[j+1]-seq.Levels[j]) / tc.alpha
						assert.InDelta(t, float64(seq.Sizes[j]), step, 1e-6)
					}
				}
			}
		})
	}
}

// TestDetect_Scenario reproduces the reference scenario: alpha = 0.2,
// eta = 0.2, T = 1, n = 100, sigma = 0.01, x0 = 100.
func TestDetect_Scenario(t *testing.T) {
	_, path, err := simulate.GBM(0.01, 100, simulate.WithSeed(2024), simulate.WithInitialPrice(100))
	require.NoError(t, err)

	seq, err := zone.Detect(path, 0.2, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Tau[0])
	assert.GreaterOrEqual(t, seq.Len(), 1)
	assert.InDelta(t, 100.0, seq.Levels[0], 1e-9)
}

// TestDetect_Errors covers the error taxonomy.
func TestDetect_Errors(t *testing.T) {
	ok := core.PricePath{1, 2, 3}

	_, err := zone.Detect(nil, 1, 0.2)
	assert.ErrorIs(t, err, core.ErrState)

	_, err = zone.Detect(ok, 0, 0.2)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = zone.Detect(ok, -1, 0.2)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = zone.Detect(ok, 1, 1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = zone.Detect(ok, 1, -0.1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = zone.Detect(core.PricePath{1, math.NaN()}, 1, 0.2)
	assert.ErrorIs(t, err, core.ErrNumericDegenerate)

	_, err = zone.Detect(ok, 1, 0.2, zone.WithJumpSizer(zone.ConstantJump(0)))
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	assert.Panics(t, func() { zone.WithJumpSizer(nil) })
	assert.Panics(t, func() { zone.WithSource(nil) })
}
