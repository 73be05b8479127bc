// SPDX-License-Identifier: MIT

package simulate_test

import (
	"testing"

	"github.com/katalvlaran/uzone/simulate"
)

// BenchmarkGBM_TradingDay simulates one 8h session at one step per second.
func BenchmarkGBM_TradingDay(b *testing.B) {
	const n = 8 * 3600
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := simulate.GBM(0.3/15.87, n, simulate.WithSeed(int64(i))); err != nil {
			b.Fatalf("GBM failed: %v", err)
		}
	}
}
