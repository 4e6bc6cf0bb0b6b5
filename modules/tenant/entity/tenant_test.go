package entity

import "testing"

func TestSubscriptionTierValid(t *testing.T) {
	for _, tier := range []SubscriptionTier{TierFree, TierBasic, TierPremium, TierEnterprise} {
		if !tier.Valid() {
			t.Errorf("%s should be valid", tier)
		}
	}
	if SubscriptionTier("platinum").Valid() {
		t.Error("unknown tier should be invalid")
	}
}

func TestTenantLimitsFallback(t *testing.T) {
	tenant := Tenant{SubscriptionTier: TierPremium}
	if tenant.Limits() != TierCatalog[TierPremium] {
		t.Error("expected premium limits")
	}

	tenant.SubscriptionTier = "bogus"
	if tenant.Limits() != TierCatalog[TierFree] {
		t.Error("unknown tier should fall back to free limits")
	}
}
