package srs

import (
	"math"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

// clampQuality forces a rating into [MinQuality, MaxQuality].
func clampQuality(quality int) int {
	if quality < MinQuality {
		return MinQuality
	}
	if quality > MaxQuality {
		return MaxQuality
	}
	return quality
}

// calculateNewEaseFactor applies the SM-2 easiness adjustment for the
// given quality rating.
//
// The easiness factor represents how quickly review intervals grow for
// a card after consecutive successes. The adjustment is the classic
// SM-2 polynomial in (5 - q):
//
//	ef' = ef + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
//
// A perfect rating (q=5) raises the factor by 0.1, a barely-passing
// rating (q=3) lowers it by 0.14, and a blackout (q=0) lowers it by
// 0.8. The result is clamped to params.MinEaseFactor so a repeatedly
// failed card never schedules slower than the floor allows.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	miss := float64(MaxQuality - quality)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	return newEF
}

// calculateNextStats computes the state a card moves to after being
// rated, following immutability principles by returning a new
// ReviewState rather than mutating the prior one.
//
// The update follows SM-2 exactly:
//   - q < 3 (failure): the repetition streak resets to 0 and the card
//     comes back after params.FailureInterval days.
//   - q >= 3 (success): the streak increments; the interval is
//     params.FirstInterval on the first success, params.SecondInterval
//     on the second, and round(interval * ef) afterwards.
//   - The easiness adjustment is applied on success and failure alike,
//     using the easiness factor the card had before this review.
//
// The due date is today plus the new interval in calendar days.
func calculateNextStats(prior *domain.ReviewState, quality int, today domain.Date, params *Params) *domain.ReviewState {
	quality = clampQuality(quality)

	next := prior.Clone()
	next.EaseFactor = calculateNewEaseFactor(prior.EaseFactor, quality, params)

	if quality < PassingQuality {
		next.Repetitions = 0
		next.IntervalDays = params.FailureInterval
	} else {
		next.Repetitions = prior.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = params.FirstInterval
		case 2:
			next.IntervalDays = params.SecondInterval
		default:
			next.IntervalDays = int(math.Round(float64(prior.IntervalDays) * prior.EaseFactor))
		}
	}

	next.Due = today.AddDays(next.IntervalDays)
	return next
}
