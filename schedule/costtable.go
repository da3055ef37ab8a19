package schedule

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// CostTables holds the two dynamic-programming tables that drive H-Revolve:
// Opt[k][l][m] is the minimal cost of reverse-mode evaluation of l steps
// with m free slots at level k (and access to all lower levels); OptP is
// the same cost under the constraint that the step-0 state has just been
// written at level k, so no extra write is required up front.
//
// Both tables are indexed [k][l][m] with k in [0,K), l in [0,lmax], m in
// [0,cvect[k]]. Unreachable cells hold +Inf.
type CostTables struct {
	Opt    [][][]float64
	OptP   [][][]float64
	Params Params
}

// BuildCostTables fills the opt/optp tables for levels 0..K-1 and lengths
// 0..lmax, following the recurrences in the H-Revolve dynamic program.
// The fill order (length 0, then 1, then increasing length per level,
// levels outer loop) respects every recurrence's data dependency: level k's
// row only reads from level k-1 (already complete) and from level k at a
// strictly shorter length (already complete in this same pass).
func BuildCostTables(lmax int, levels LevelVectors, params Params) (*CostTables, error) {
	if err := levels.Validate(); err != nil {
		return nil, err
	}
	if lmax < 0 {
		return nil, fmt.Errorf("lmax=%d must be non-negative: %w", lmax, ErrConfig)
	}
	params.Levels = levels
	K := levels.NumLevels()

	opt := make([][][]float64, K)
	optp := make([][][]float64, K)
	for k := 0; k < K; k++ {
		mmax := int(levels.Cvect[k])
		opt[k] = make([][]float64, lmax+1)
		optp[k] = make([][]float64, lmax+1)
		for l := 0; l <= lmax; l++ {
			opt[k][l] = make([]float64, mmax+1)
			optp[k][l] = make([]float64, mmax+1)
			for m := 0; m <= mmax; m++ {
				opt[k][l][m] = math.Inf(1)
				optp[k][l][m] = math.Inf(1)
			}
		}
	}

	cfwd, cbwd := params.Cfwd, params.Cbwd
	wvect, rvect := levels.Wvect, levels.Rvect

	for k := 0; k < K; k++ {
		mmax := int(levels.Cvect[k])

		// Rule 1: l = 0 is a single reverse step, for every m.
		for m := 0; m <= mmax; m++ {
			opt[k][0][m] = cbwd
			optp[k][0][m] = cbwd
		}

		// Rule 2: l = 1 base case, for every (k,m) except (0,0).
		if lmax >= 1 {
			for m := 0; m <= mmax; m++ {
				if k == 0 && m == 0 {
					continue
				}
				optp[k][1][m] = cfwd + 2*cbwd + rvect[0]
				opt[k][1][m] = wvect[0] + optp[k][1][m]
			}
		}

		if k == 0 {
			// Rule 3: level 0, single slot, closed form.
			if mmax >= 1 {
				for l := 2; l <= lmax; l++ {
					fl := float64(l)
					optp[0][l][1] = (fl+1)*cbwd + fl*(fl+1)/2*cfwd + fl*rvect[0]
					opt[0][l][1] = wvect[0] + optp[0][l][1]
				}
			}
			// Rule 4: level 0, m >= 2.
			for m := 2; m <= mmax; m++ {
				for l := 2; l <= lmax; l++ {
					best := optp[0][l][1]
					for j := 1; j < l; j++ {
						cand := float64(j)*cfwd + opt[0][l-j][m-1] + rvect[0] + optp[0][j-1][m]
						if cand < best {
							best = cand
						}
					}
					optp[0][l][m] = best
					opt[0][l][m] = wvect[0] + best
				}
			}
			continue
		}

		// Rule 5: level k >= 1.
		fallbackCap := int(levels.Cvect[k-1])
		for l := 2; l <= lmax; l++ {
			opt[k][l][0] = opt[k-1][l][fallbackCap]
		}
		for m := 1; m <= mmax; m++ {
			for l := 2; l <= lmax; l++ {
				fallback := opt[k-1][l][fallbackCap]
				best := fallback
				for j := 1; j < l; j++ {
					cand := float64(j)*cfwd + opt[k][l-j][m-1] + rvect[k] + optp[k][j-1][m]
					if cand < best {
						best = cand
					}
				}
				optp[k][l][m] = best
				opt[k][l][m] = math.Min(fallback, wvect[k]+best)
			}
		}
	}

	logrus.Debugf("schedule: built cost tables for K=%d levels, lmax=%d", K, lmax)
	return &CostTables{Opt: opt, OptP: optp, Params: params}, nil
}

// argminFrom1 returns the smallest j in [1,l) minimizing f(j), breaking ties
// by the smallest index, and the attained value. l must be >= 2.
func argminFrom1(l int, f func(j int) float64) (int, float64) {
	jmin := 1
	best := f(1)
	for j := 2; j < l; j++ {
		v := f(j)
		if v < best {
			best = v
			jmin = j
		}
	}
	return jmin, best
}
