package flights

import (
	"sort"

	"github.com/ekaraman/skyfare/internal/client/models"
)

// Filter selects the sort criterion of an offer list.
type Filter string

const (
	FilterBest     Filter = "best"     // descending score
	FilterCheapest Filter = "cheapest" // ascending raw price
	FilterFastest  Filter = "fastest"  // ascending first-leg duration
)

// SortOffers returns a new slice sorted by the given criterion. The sort is
// stable: ties keep their original relative order.
func SortOffers(offers []models.FlightOffer, f Filter) []models.FlightOffer {
	sorted := make([]models.FlightOffer, len(offers))
	copy(sorted, offers)

	switch f {
	case FilterCheapest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Raw < sorted[j].Price.Raw
		})
	case FilterFastest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return firstLegDuration(sorted[i]) < firstLegDuration(sorted[j])
		})
	default: // FilterBest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Score > sorted[j].Score
		})
	}

	return sorted
}

func firstLegDuration(o models.FlightOffer) int {
	if len(o.Legs) == 0 {
		return 0
	}
	return o.Legs[0].DurationInMinutes
}
