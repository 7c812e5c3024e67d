package booking

import (
	"errors"
	"testing"
)

func TestComputePricingUpsizesToPlanMinimum(t *testing.T) {
	// Wedding plan: 1/guest, 100 minimum, 30% deposit. 50 guests price as 100.
	pricing, err := ComputePricing("wedding", 50)
	if err != nil {
		t.Fatalf("ComputePricing failed: %v", err)
	}
	if pricing.TotalAmount != 100 {
		t.Errorf("total = %d, want 100", pricing.TotalAmount)
	}
	if pricing.DepositAmount != 30 {
		t.Errorf("deposit = %d, want 30", pricing.DepositAmount)
	}
	if pricing.RemainingAmount != 70 {
		t.Errorf("remaining = %d, want 70", pricing.RemainingAmount)
	}
	if pricing.DepositPercentage != 30 || pricing.Currency != "AUD" {
		t.Errorf("snapshot metadata wrong: %+v", pricing)
	}
}

func TestComputePricingIsDeterministic(t *testing.T) {
	first, err := ComputePricing("concert", 250)
	if err != nil {
		t.Fatalf("ComputePricing failed: %v", err)
	}
	second, _ := ComputePricing("concert", 250)
	if first != second {
		t.Errorf("identical inputs produced %+v and %+v", first, second)
	}
}

func TestComputePricingTotalIsMonotonicInGuests(t *testing.T) {
	prev := int64(-1)
	for guests := 1; guests <= 300; guests += 25 {
		pricing, err := ComputePricing("birthday", guests)
		if err != nil {
			t.Fatalf("ComputePricing failed for %d guests: %v", guests, err)
		}
		if pricing.TotalAmount < prev {
			t.Fatalf("total decreased at %d guests: %d < %d", guests, pricing.TotalAmount, prev)
		}
		prev = pricing.TotalAmount
	}
}

func TestComputePricingAppliesDepositFloor(t *testing.T) {
	// Musical: 20/guest, 40 minimum, 20%. One guest upsizes to 40 guests,
	// total 800, raw deposit 160 — above floor. Use wedding with tiny totals:
	// 100 total, 30% -> 30 deposit, exactly at the floor.
	pricing, err := ComputePricing("wedding", 1)
	if err != nil {
		t.Fatalf("ComputePricing failed: %v", err)
	}
	if pricing.DepositAmount < 30 {
		t.Errorf("deposit %d fell below the configured floor", pricing.DepositAmount)
	}
}

func TestComputePricingRemainingUsesClampedDeposit(t *testing.T) {
	// Whatever clamping does, the three amounts must reconcile.
	for _, guests := range []int{1, 40, 100, 500, 100000} {
		pricing, err := ComputePricing("concert", guests)
		if err != nil {
			t.Fatalf("ComputePricing failed: %v", err)
		}
		if pricing.DepositAmount+pricing.RemainingAmount != pricing.TotalAmount {
			t.Errorf("guests=%d: deposit %d + remaining %d != total %d",
				guests, pricing.DepositAmount, pricing.RemainingAmount, pricing.TotalAmount)
		}
	}
}

func TestComputePricingClampsDepositCeiling(t *testing.T) {
	// 60/guest at 40%: 100000 guests gives a raw deposit of 2400000, above
	// the 1000000 cap.
	pricing, err := ComputePricing("concert", 100000)
	if err != nil {
		t.Fatalf("ComputePricing failed: %v", err)
	}
	if pricing.DepositAmount != 1000000 {
		t.Errorf("deposit = %d, want ceiling 1000000", pricing.DepositAmount)
	}
	if pricing.RemainingAmount != pricing.TotalAmount-1000000 {
		t.Errorf("remaining = %d, not reconciled against clamped deposit", pricing.RemainingAmount)
	}
}

func TestComputePricingRejectsUnknownCategory(t *testing.T) {
	_, err := ComputePricing("gala", 100)
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownCategoryError", err)
	}
	if unknown.Category != "gala" {
		t.Errorf("error category = %q, want gala", unknown.Category)
	}
}
