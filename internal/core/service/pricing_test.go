package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

func TestComputeTotal_VIPScenario(t *testing.T) {
	vip := domain.MustPlan(domain.PlanVIP)
	if got := ComputeTotal(vip, 50, 30); got != 1699 {
		t.Fatalf("expected 1699, got %d", got)
	}
}

func TestComputeTotal_FormulaAndMonotonicity(t *testing.T) {
	for _, p := range domain.Plans() {
		prevBySlots := -1
		for slots := 1; slots <= p.MaxSlots; slots++ {
			got := ComputeTotal(p, slots, 30)
			want := p.BasePrice + slots*p.PricePerSlot + 30*p.PricePerDay
			if got != want {
				t.Fatalf("%s slots=%d: expected %d, got %d", p.Name, slots, want, got)
			}
			if got < prevBySlots {
				t.Fatalf("%s: total decreased at slots=%d", p.Name, slots)
			}
			prevBySlots = got
		}

		prevByDays := -1
		for days := 1; days <= domain.MaxDays; days++ {
			got := ComputeTotal(p, 1, days)
			if got < 0 {
				t.Fatalf("%s days=%d: negative total %d", p.Name, days, got)
			}
			if got < prevByDays {
				t.Fatalf("%s: total decreased at days=%d", p.Name, days)
			}
			prevByDays = got
		}
	}
}

func TestComputeTotal_DoesNotRenormalize(t *testing.T) {
	pro := domain.MustPlan(domain.PlanPro)
	// 500 slots is above Pro's bound; the calculator prices it as given.
	if got := ComputeTotal(pro, 500, 1); got != 299+2500+10 {
		t.Fatalf("unexpected total %d", got)
	}
}

func TestLineItems(t *testing.T) {
	pro := domain.MustPlan(domain.PlanPro)
	got := LineItems(pro, 10, 30)
	want := ports.LineItems{Base: 299, Slots: 50, Days: 300, Total: 649}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("line items mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxSlots(t *testing.T) {
	cases := map[domain.PlanName]int{
		domain.PlanFree: 10,
		domain.PlanPro:  50,
		domain.PlanVIP:  200,
	}
	for name, want := range cases {
		if got := MaxSlots(domain.MustPlan(name)); got != want {
			t.Errorf("%s: expected %d, got %d", name, want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	free := domain.MustPlan(domain.PlanFree)
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"slots below", ClampSlots(free, 0), 1},
		{"slots above", ClampSlots(free, 11), 10},
		{"slots inside", ClampSlots(free, 7), 7},
		{"days below", ClampDays(-3), 1},
		{"days above", ClampDays(400), 365},
		{"days inside", ClampDays(30), 30},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}
