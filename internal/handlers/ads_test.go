package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"storefront/internal/ads"
	"storefront/internal/middleware"
	"storefront/internal/models"
)

type adsResponse struct {
	Ads                map[string][]models.Ad `json:"ads"`
	Popup              *models.Ad             `json:"popup"`
	PromotionDiscounts map[string]float64     `json:"promotionDiscounts"`
}

func storedAds() []models.Ad {
	return []models.Ad{
		{ID: "b1", Active: true, Link: "/offers/summer", DiscountPercent: 20},
		{ID: "b2", Active: true, Type: models.AdTypeBanner, Link: "https://shop.example/offers/summer", DiscountPercent: 30},
		{ID: "p1", Active: true, Type: models.AdTypePopup},
		{ID: "old", Active: true, Type: models.AdTypeCarousel, EndDate: models.At(fixedNow.Add(-time.Hour))},
	}
}

func TestGetAds(t *testing.T) {
	env := newTestEnv(t)
	env.dbUp()
	env.ads.EXPECT().Active(gomock.Any()).Return(storedAds(), nil)

	w := env.do(http.MethodGet, "/ads", nil, nil)
	expectStatus(t, w, http.StatusOK)

	var body adsResponse
	decode(t, w, &body)
	if len(body.Ads[models.AdTypeBanner]) != 2 || len(body.Ads[models.AdTypeCarousel]) != 0 {
		t.Fatalf("unexpected groups %+v", body.Ads)
	}
	if body.Popup == nil || body.Popup.ID != "p1" {
		t.Fatalf("expected popup p1, got %+v", body.Popup)
	}
	if body.PromotionDiscounts["summer"] != 30 {
		t.Fatalf("expected highest summer discount, got %v", body.PromotionDiscounts)
	}
}

func TestDismissedPopupStaysHiddenForSession(t *testing.T) {
	env := newTestEnv(t)
	env.dbUp()
	env.ads.EXPECT().Active(gomock.Any()).Return(storedAds(), nil).Times(3)

	session := map[string]string{middleware.SessionHeader: uuid.NewString()}

	w := env.do(http.MethodPost, "/ads/p1/dismiss", nil, session)
	expectStatus(t, w, http.StatusNoContent)

	w = env.do(http.MethodGet, "/ads", nil, session)
	expectStatus(t, w, http.StatusOK)
	var mine adsResponse
	decode(t, w, &mine)
	if mine.Popup != nil || len(mine.Ads[models.AdTypePopup]) != 0 {
		t.Fatalf("expected dismissed popup to be hidden, got %+v", mine)
	}

	w = env.do(http.MethodGet, "/ads", nil, map[string]string{middleware.SessionHeader: uuid.NewString()})
	expectStatus(t, w, http.StatusOK)
	var other adsResponse
	decode(t, w, &other)
	if other.Popup == nil {
		t.Fatalf("expected popup for a different session")
	}
}

func TestDismissAdRejectsUnknownIDs(t *testing.T) {
	env := newTestEnv(t)
	env.dbUp()
	env.ads.EXPECT().Active(gomock.Any()).Return(storedAds(), nil).Times(3)

	for _, id := range []string{"nope", "b1", "old"} {
		w := env.do(http.MethodPost, "/ads/"+id+"/dismiss", nil, nil)
		expectStatus(t, w, http.StatusNotFound)
	}

	store := env.deps.Dismissals.(*ads.MemoryDismissals)
	if store.Len() != 0 {
		t.Fatalf("expected nothing stored for unknown or non-popup ids, got %d keys", store.Len())
	}
}

func TestDismissAdStoreUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.db.EXPECT().Ping(gomock.Any()).Return(nil)
	env.ads.EXPECT().Active(gomock.Any()).Return(nil, errors.New("boom"))

	w := env.do(http.MethodPost, "/ads/p1/dismiss", nil, nil)
	expectStatus(t, w, http.StatusInternalServerError)

	if env.deps.Dismissals.(*ads.MemoryDismissals).Len() != 0 {
		t.Fatalf("expected nothing stored when ads cannot be loaded")
	}
}
