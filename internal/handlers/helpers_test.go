package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"storefront/internal/ads"
	"storefront/internal/database/mocks"
	"storefront/internal/middleware"
)

const testSecret = "handler-test-secret"

var fixedNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	deps     Deps
	db       *mocks.MockPinger
	products *mocks.MockProductStore
	ads      *mocks.MockAdStore
	admins   *mocks.MockAdminStore
	router   *gin.Engine
}

func newTestEnv(t *testing.T, opts ...func(*Deps)) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	env := &testEnv{
		db:       mocks.NewMockPinger(ctrl),
		products: mocks.NewMockProductStore(ctrl),
		ads:      mocks.NewMockAdStore(ctrl),
		admins:   mocks.NewMockAdminStore(ctrl),
	}
	env.deps = Deps{
		DB:         env.db,
		Products:   env.products,
		Ads:        env.ads,
		Admins:     env.admins,
		Dismissals: ads.NewMemoryDismissals(100),
		Clock:      func() time.Time { return fixedNow },
		Location:   time.UTC,
		Timeout:    time.Second,
		JWTSecret:  testSecret,
		AccessTTL:  time.Hour,
	}

	for _, opt := range opts {
		opt(&env.deps)
	}

	env.router = gin.New()
	env.router.Use(middleware.Session())
	Register(env.router, env.deps)
	return env
}

func (e *testEnv) dbUp() {
	e.db.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
}

func (e *testEnv) do(method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
