package domain

import (
	"errors"
	"strings"
)

// PlanName identifies a pricing tier.
type PlanName string

const (
	PlanFree PlanName = "Free"
	PlanPro  PlanName = "Pro"
	PlanVIP  PlanName = "VIP"
)

const (
	MinSlots = 1
	MinDays  = 1
	MaxDays  = 365
)

var ErrUnknownPlan = errors.New("unknown plan")

// Plan is a named pricing tier. Prices are whole rubles.
type Plan struct {
	Name         PlanName `json:"name"`
	BasePrice    int      `json:"base_price"`
	MaxSlots     int      `json:"max_slots"`
	PricePerSlot int      `json:"price_per_slot"`
	PricePerDay  int      `json:"price_per_day"`
}

// plans is the static tier table, in display order.
var plans = []Plan{
	{Name: PlanFree, BasePrice: 0, MaxSlots: 10, PricePerSlot: 0, PricePerDay: 0},
	{Name: PlanPro, BasePrice: 299, MaxSlots: 50, PricePerSlot: 5, PricePerDay: 10},
	{Name: PlanVIP, BasePrice: 799, MaxSlots: 200, PricePerSlot: 3, PricePerDay: 25},
}

// Plans returns a copy of all tiers in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// LookupPlan resolves a plan by name, ignoring case.
func LookupPlan(name string) (Plan, error) {
	for _, p := range plans {
		if strings.EqualFold(string(p.Name), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}

// MustPlan is LookupPlan for names known at compile time.
func MustPlan(name PlanName) Plan {
	p, err := LookupPlan(string(name))
	if err != nil {
		panic("domain: unknown plan " + string(name))
	}
	return p
}
