package services

import (
	"context"
	"testing"

	"github.com/kitad/staybook/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchHotelsPagination(t *testing.T) {
	var gotSkip, gotLimit int64
	hotels := &fakeHotelsRepo{
		search: func(filter bson.M, sort bson.D, skip, limit int64) ([]*models.Hotel, error) {
			gotSkip, gotLimit = skip, limit
			return []*models.Hotel{{Name: "A"}, {Name: "B"}}, nil
		},
		count: func(filter bson.M) (int64, error) {
			return 23, nil
		},
	}

	svc := NewHotelService(hotels, nil)
	resp, err := svc.SearchHotels(context.Background(), models.SearchParams{Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotSkip != 20 || gotLimit != 10 {
		t.Errorf("window: got skip=%d limit=%d, want skip=20 limit=10", gotSkip, gotLimit)
	}
	if resp.Pagination.Total != 23 {
		t.Errorf("total: got %d", resp.Pagination.Total)
	}
	if resp.Pagination.Page != 3 {
		t.Errorf("page: got %d", resp.Pagination.Page)
	}
	if resp.Pagination.Pages != 3 {
		t.Errorf("pages: got %d, want ceil(23/10)=3", resp.Pagination.Pages)
	}
}

func TestSearchHotelsPageBeyondResults(t *testing.T) {
	hotels := &fakeHotelsRepo{
		search: func(filter bson.M, sort bson.D, skip, limit int64) ([]*models.Hotel, error) {
			return nil, nil
		},
		count: func(filter bson.M) (int64, error) {
			return 23, nil
		},
	}

	svc := NewHotelService(hotels, nil)
	resp, err := svc.SearchHotels(context.Background(), models.SearchParams{Page: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Data) != 0 {
		t.Errorf("expected empty page, got %d hotels", len(resp.Data))
	}
	if resp.Pagination.Total != 23 || resp.Pagination.Pages != 3 {
		t.Errorf("pagination metadata should still reflect the result set, got %+v", resp.Pagination)
	}
}
