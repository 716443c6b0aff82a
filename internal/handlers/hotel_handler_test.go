package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/services"
)

type stubHotelsRepo struct {
	models.HotelsRepo
	getByID func(id string) (*models.Hotel, error)
}

func (s *stubHotelsRepo) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	return s.getByID(id)
}

func TestGetHotelNotFoundUsesErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &stubHotelsRepo{
		getByID: func(id string) (*models.Hotel, error) {
			return nil, models.ErrNotFound
		},
	}
	svc := services.NewHotelService(repo, nil)

	r := gin.New()
	r.GET("/api/hotels/:id", GetHotel(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels/abc123", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("error response must carry success=false")
	}
	if body.Error != "hotel not found" {
		t.Errorf("error: got %q", body.Error)
	}
}
