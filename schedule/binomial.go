package schedule

import "fmt"

// Trajectory selects the optimization criterion n_advance uses when more
// than one checkpoint placement attains the minimal replay count.
type Trajectory string

// TrajectoryMaximum picks the placement that maximizes the length of the
// first forward interval, the convention classical binomial (Revolve-style)
// checkpointing uses.
const TrajectoryMaximum Trajectory = "maximum"

// NAdvance computes how many forward steps to take before the next
// checkpoint write, for a binomial (Revolve-style) schedule advancing
// 'steps' remaining steps with 'snapshots' checkpoint slots available.
//
// It follows the classical Griewank-Walther closed form: find the smallest
// repetition count reps such that C(snapshots+reps, snapshots) >= steps,
// then pick the jump distance within the two binomial coefficients that
// bracket steps at that reps: the largest first interval that keeps the
// replay count minimal, steps - C(snapshots+reps-2, snapshots-1) when that
// does not exceed C(snapshots+reps-1, snapshots), otherwise
// C(snapshots+reps-1, snapshots). The result lies in [1, steps-1] for
// steps >= 2, and is 1 for steps == 1.
func NAdvance(steps, snapshots int, trajectory Trajectory) (int, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("n_advance: steps=%d must be positive: %w", steps, ErrConfig)
	}
	if snapshots <= 0 {
		return 0, fmt.Errorf("n_advance: snapshots=%d must be positive: %w", snapshots, ErrConfig)
	}
	if trajectory != TrajectoryMaximum {
		return 0, fmt.Errorf("n_advance: unsupported trajectory %q: %w", trajectory, ErrConfig)
	}
	if snapshots == 1 || steps == 1 {
		return 1, nil
	}

	reps := 0
	for binomial(snapshots+reps, snapshots) < steps {
		reps++
	}

	bSnapReps := binomial(snapshots+reps-1, snapshots)
	bSnapReps1 := binomial(snapshots+reps-2, snapshots-1)
	if steps <= bSnapReps+bSnapReps1 {
		return steps - bSnapReps1, nil
	}
	return bSnapReps, nil
}

// binomial computes C(n,k) with a multiplicative running-product evaluation,
// capped at a safe magnitude for the schedule sizes this engine targets
// (thousands of steps, tens of snapshots); it never reaches for big.Int
// since n_advance only ever compares these values against step counts of
// that order.
func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
		if result > 1<<40 {
			return 1 << 40
		}
	}
	return result
}
