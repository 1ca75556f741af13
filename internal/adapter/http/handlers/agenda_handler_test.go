package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estoque_gelb/internal/adapter/http/handlers/mocks"
	"estoque_gelb/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAgendaHandler_ListRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolution failure degrades to 200 []", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAgendaUseCase(ctrl)
		h := NewAgendaHandler(uc)

		uc.EXPECT().ListRoutes(gomock.Any(), "2024-05-01", "2024-05-02").
			Return(nil, errors.New("boom"))

		r := gin.New()
		r.GET("/api/agendas", h.ListRoutes)

		req := httptest.NewRequest(http.MethodGet, "/api/agendas?start_date=2024-05-01&end_date=2024-05-02", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected tolerant 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("passes the window through unmodified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAgendaUseCase(ctrl)
		h := NewAgendaHandler(uc)

		uc.EXPECT().ListRoutes(gomock.Any(), "01/05/2024", "02/05/2024").
			Return([]entities.Route{{ID: "5", Name: "ROTA CENTRO"}}, nil)

		r := gin.New()
		r.GET("/api/agendas", h.ListRoutes)

		req := httptest.NewRequest(http.MethodGet, "/api/agendas?start_date=01%2F05%2F2024&end_date=02%2F05%2F2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `[{"id":"5","name":"ROTA CENTRO"}]` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPicklistHandler_ListByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolution failure degrades to 200 []", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPicklistUseCase(ctrl)
		h := NewPicklistHandler(uc)

		uc.EXPECT().ListByRoute(gomock.Any(), "5", "", "").Return(nil, errors.New("boom"))

		r := gin.New()
		r.GET("/api/picklists", h.ListByRoute)

		req := httptest.NewRequest(http.MethodGet, "/api/picklists?rota=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected tolerant 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("serializes the picklist contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPicklistUseCase(ctrl)
		h := NewPicklistHandler(uc)

		uc.EXPECT().ListByRoute(gomock.Any(), "5", "2024-05-01", "2024-05-02").
			Return([]entities.Picklist{{ID: "10", Nome: "VM-0077"}}, nil)

		r := gin.New()
		r.GET("/api/picklists", h.ListByRoute)

		req := httptest.NewRequest(http.MethodGet, "/api/picklists?rota=5&start_date=2024-05-01&end_date=2024-05-02", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `[{"id":"10","nome":"VM-0077"}]` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
