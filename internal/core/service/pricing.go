package service

import (
	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// ComputeTotal returns basePrice + slots*pricePerSlot + days*pricePerDay.
// Inputs are used as given; callers bound them (see ClampSlots, ClampDays).
func ComputeTotal(plan domain.Plan, slots, days int) int {
	return plan.BasePrice + slots*plan.PricePerSlot + days*plan.PricePerDay
}

// MaxSlots returns the upper slot bound of plan.
func MaxSlots(plan domain.Plan) int {
	return plan.MaxSlots
}

// LineItems returns the price breakdown for display.
func LineItems(plan domain.Plan, slots, days int) ports.LineItems {
	return ports.LineItems{
		Base:  plan.BasePrice,
		Slots: slots * plan.PricePerSlot,
		Days:  days * plan.PricePerDay,
		Total: ComputeTotal(plan, slots, days),
	}
}

// ClampSlots bounds slots into [1, plan.MaxSlots].
func ClampSlots(plan domain.Plan, slots int) int {
	return clamp(slots, domain.MinSlots, plan.MaxSlots)
}

// ClampDays bounds days into [1, 365].
func ClampDays(days int) int {
	return clamp(days, domain.MinDays, domain.MaxDays)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
