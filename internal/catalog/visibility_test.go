package catalog

import (
	"fmt"
	"testing"

	"storefront/internal/models"
)

func TestFilterBuyerVisibleCombinations(t *testing.T) {
	moderations := []string{"", models.ModerationApproved, "pending"}

	for mask := 0; mask < 16; mask++ {
		for _, moderation := range moderations {
			p := models.Product{
				ID:                fmt.Sprintf("p-%d-%s", mask, moderation),
				IsDeleted:         mask&1 != 0,
				IsDeletedByAdmin:  mask&2 != 0,
				IsDeletedBySeller: mask&4 != 0,
				ModerationStatus:  moderation,
			}
			if mask&8 != 0 {
				p.Status = models.StatusArchived
			}

			want := mask == 0 && moderation != "pending"
			got := len(FilterBuyerVisible([]models.Product{p})) == 1
			if got != want {
				t.Fatalf("mask=%04b moderation=%q: expected visible=%v, got %v", mask, moderation, want, got)
			}
		}
	}
}

func TestIsBuyerVisibleStatus(t *testing.T) {
	tests := map[string]bool{
		"":                      true,
		models.StatusActive:     true,
		models.StatusOutOfStock: true,
		models.StatusArchived:   false,
		"draft":                 false,
		models.StatusInactive:   false,
	}
	for status, want := range tests {
		if got := IsBuyerVisible(models.Product{Status: status}); got != want {
			t.Fatalf("status %q: expected %v, got %v", status, want, got)
		}
	}
}

func TestFilterBuyerVisibleKeepsOrder(t *testing.T) {
	products := []models.Product{
		{ID: "a"},
		{ID: "b", IsDeletedBySeller: true},
		{ID: "c", Status: models.StatusOutOfStock},
	}
	got := FilterBuyerVisible(products)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(products) != 3 {
		t.Fatal("input slice must not be modified")
	}
}
