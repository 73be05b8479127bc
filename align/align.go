// SPDX-License-Identifier: MIT

package align

import (
	"math"

	"github.com/montanaflynn/stats"
)

// step is the move that reached a DP cell.
type step uint8

const (
	stepNone  step = iota
	stepDiag       // (i-1, j-1)
	stepUp         // (i-1, j): efficient advances, observed holds
	stepLeft       // (i, j-1): observed advances, efficient holds
)

// band stores the rows 0..n of the DP matrix restricted to |i−j| ≤ w.
// Row i holds columns i−w..i+w at offsets 0..2w. When the band is at least
// as wide as a full row, rows hold columns 0..n directly.
type band struct {
	n, w  int
	width int
	full  bool
	cost  []float64
	move  []step
}

func newBand(n, w int) *band {
	b := &band{n: n, w: w, width: 2*w + 1}
	if b.width >= n+1 {
		b.full, b.width = true, n+1
	}
	b.cost = make([]float64, (n+1)*b.width)
	b.move = make([]step, (n+1)*b.width)

	inf := math.Inf(1)
	for k := range b.cost {
		b.cost[k] = inf
	}
	return b
}

func (b *band) index(i, j int) (int, bool) {
	if i < 0 || i > b.n || j < 0 || j > b.n || j-i > b.w || i-j > b.w {
		return 0, false
	}
	if b.full {
		return i*b.width + j, true
	}
	return i*b.width + j - i + b.w, true
}

func (b *band) get(i, j int) float64 {
	k, ok := b.index(i, j)
	if !ok {
		return math.Inf(1)
	}
	return b.cost[k]
}

// Lag aligns efficient and observed and reports the warping path with its
// lag statistics. Both inputs must share one grid (equal length).
func Lag(efficient, observed []float64, opts Options) (Result, error) {
	n, w, err := check(efficient, observed, opts)
	if err != nil {
		return Result{}, err
	}

	b := newBand(n, w)
	origin, _ := b.index(0, 0)
	b.cost[origin] = 0

	for i := 1; i <= n; i++ {
		lo, hi := max(1, i-w), min(n, i+w)
		for j := lo; j <= hi; j++ {
			match := b.get(i-1, j-1)
			up := b.get(i-1, j) + opts.SlopePenalty
			left := b.get(i, j-1) + opts.SlopePenalty

			best, mv := match, stepDiag
			if up < best {
				best, mv = up, stepUp
			}
			if left < best {
				best, mv = left, stepLeft
			}

			k, _ := b.index(i, j)
			b.cost[k] = math.Abs(efficient[i-1]-observed[j-1]) + best
			b.move[k] = mv
		}
	}

	path := backtrack(b)
	lags := make(stats.Float64Data, len(path))
	maxLag := 0
	for p, c := range path {
		d := c.J - c.I
		lags[p] = float64(d)
		if abs(d) > abs(maxLag) {
			maxLag = d
		}
	}
	mean, err := stats.Mean(lags)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Distance: b.get(n, n),
		Path:     path,
		MeanLag:  mean,
		MaxLag:   maxLag,
	}, nil
}

// Distance returns only the DTW distance, keeping two rolling rows.
func Distance(efficient, observed []float64, opts Options) (float64, error) {
	n, w, err := check(efficient, observed, opts)
	if err != nil {
		return 0, err
	}

	inf := math.Inf(1)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}
		lo, hi := max(1, i-w), min(n, i+w)
		for j := lo; j <= hi; j++ {
			best := min(prev[j-1], prev[j]+opts.SlopePenalty, curr[j-1]+opts.SlopePenalty)
			curr[j] = math.Abs(efficient[i-1]-observed[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}

func check(efficient, observed []float64, opts Options) (n, w int, err error) {
	if len(efficient) == 0 || len(observed) == 0 {
		return 0, 0, ErrEmptyInput
	}
	if len(efficient) != len(observed) {
		return 0, 0, ErrLengthMismatch
	}
	if opts.Window < 0 {
		return 0, 0, ErrBadWindow
	}
	if !(opts.SlopePenalty >= 0) || math.IsInf(opts.SlopePenalty, 1) {
		return 0, 0, ErrBadPenalty
	}

	n = len(efficient)
	w = opts.Window
	if w == 0 || w > n-1 {
		w = n - 1
	}
	return n, w, nil
}

// backtrack walks the stored moves from (n, n) to (1, 1).
func backtrack(b *band) []Coord {
	path := make([]Coord, 0, 2*b.n)
	i, j := b.n, b.n
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		k, _ := b.index(i, j)
		switch b.move[k] {
		case stepUp:
			i--
		case stepLeft:
			j--
		default:
			i--
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
