// SPDX-License-Identifier: MIT

// Package observed assembles the full-length observed tape from the sparse
// posting indices and grid levels.
//
// Construction:
//
//	p[0] = Levels[0]
//	p[jumpIndex[j]] = Levels[j]            for j = 0..len(Tau)-2
//	p[i] = p[i-1]                          for every i still unset
//	p[i] = round(p[i], precision)          default precision 2
//
// The result is right-continuous: a level holds from its posting index up to
// the index before the next posting. When two postings share an index the
// later interval wins.
package observed
