// SPDX-License-Identifier: MIT

// Package zone detects uncertainty-zone exits: the instants at which the
// efficient price has moved far enough past the current tick level to post a
// new quote.
//
// Model:
//
//	Around the last observed level P the zone is the open band
//
//	    ( P − α·(L − ½ + η),  P + α·(L − ½ + η) )
//
//	where α is the tick size, η ∈ [0,1) the aversion to price changes and L
//	the jump size in ticks. Leaving the band upward moves the tape to P + α·L,
//	downward to P − α·L. For η > 0 the half-width exceeds half a tick, so a
//	fresh level is not immediately undone by chatter at the tick midpoint.
//	For η = 0 and L = 1 the band is exactly one tick wide.
//
// Jump sizes come from a JumpSizer. L is redrawn after every recorded
// crossing and held fixed while the price stays inside the zone.
//
// Initial level:
//
//	k = ⌊x0/α⌋; the nearer of k·α and (k+1)·α, ties going to k·α.
//
// Complexity: O(n) time, O(#crossings) memory.
package zone
