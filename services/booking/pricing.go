package booking

import (
	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/models"
)

// ComputePricing calculates the pricing snapshot for an event. Guest counts
// below the plan minimum are priced at the minimum; rejecting under-minimum
// requests is the validation layer's job, not pricing's.
//
// The deposit is ceil(total * pct / 100), raised to the configured floor and
// clamped to the ceiling. The remaining balance is always total minus the
// final (post-clamp) deposit, so the three amounts add up at every call site.
func ComputePricing(eventType string, guests int) (models.Pricing, error) {
	plan, ok := models.PlanFor(eventType)
	if !ok {
		return models.Pricing{}, &UnknownCategoryError{Category: eventType}
	}

	effectiveGuests := guests
	if effectiveGuests < plan.MinGuests {
		effectiveGuests = plan.MinGuests
	}

	total := int64(effectiveGuests) * plan.PricePerGuest

	deposit := (total*int64(plan.DepositPercentage) + 99) / 100 // ceil
	if min := config.AppConfig.MinDepositAmount; deposit < min {
		deposit = min
	}
	if max := config.AppConfig.MaxDepositAmount; deposit > max {
		deposit = max
	}

	return models.Pricing{
		TotalAmount:       total,
		DepositAmount:     deposit,
		RemainingAmount:   total - deposit,
		DepositPercentage: plan.DepositPercentage,
		Currency:          plan.Currency,
	}, nil
}
