package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradein_valuation/internal/adapter/http/handlers"
	"tradein_valuation/internal/adapter/http/handlers/mocks"
	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIValuationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIValuationUseCase(gomock.NewController(t))
	return NewRouter(nil, handlers.NewValuationHandler(uc, nil)), uc
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_ValuationRoutes(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "KA01WTPHNE0007").Return(entities.Valuation{ID: "KA01WTPHNE0007"}, nil)
	uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(usecase.Quote{Tier: usecase.RuleTierBaseline}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/valuations/KA01WTPHNE0007", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/valuations/quote", bytes.NewBufferString(`{"product_id":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_, _ any) (entities.Valuation, error) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/valuations/x", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
