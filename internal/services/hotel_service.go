package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type HotelService struct {
	hotelsRepo models.HotelsRepo
	cld        *cloudinary.Cloudinary
}

func NewHotelService(hotelsRepo models.HotelsRepo, cld *cloudinary.Cloudinary) *HotelService {
	return &HotelService{
		hotelsRepo: hotelsRepo,
		cld:        cld,
	}
}

// SearchHotels runs the public search: filter, sort and a fixed-size page
// window, plus total-count metadata.
func (hs *HotelService) SearchHotels(ctx context.Context, params models.SearchParams) (*models.HotelSearchResponse, error) {
	filter := params.BuildFilter()

	hotels, err := hs.hotelsRepo.SearchHotels(ctx, filter, params.BuildSort(), params.Skip(), models.SearchPageSize)
	if err != nil {
		return nil, err
	}

	total, err := hs.hotelsRepo.CountHotels(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &models.HotelSearchResponse{
		Data: hotels,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Pages: models.TotalPages(total),
		},
	}, nil
}

func (hs *HotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	if id == "" {
		return nil, fmt.Errorf("hotel ID is required")
	}
	return hs.hotelsRepo.GetHotelByID(ctx, id)
}

// CreateHotel uploads the listing images and persists the hotel. New
// listings are created unapproved and stay out of public search until an
// admin approves them.
func (hs *HotelService) CreateHotel(ctx context.Context, hotel *models.Hotel, ownerID string, imageFiles []*multipart.FileHeader) (*models.Hotel, error) {
	if err := models.Validate.Struct(hotel); err != nil {
		return nil, fmt.Errorf("invalid hotel data provided: %v", err)
	}

	imageURLs, err := helpers.UploadImages(ctx, hs.cld, imageFiles, helpers.HotelFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload images: %w", err)
	}

	now := time.Now()
	hotel.UserID = ownerID
	hotel.ImageURLs = imageURLs
	approved := false
	hotel.IsApproved = &approved
	hotel.LastUpdated = now
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	return hs.hotelsRepo.CreateHotel(ctx, hotel)
}

func (hs *HotelService) ListMyHotels(ctx context.Context, ownerID string) ([]*models.Hotel, error) {
	return hs.hotelsRepo.ListHotelsByOwner(ctx, ownerID)
}

func (hs *HotelService) GetMyHotel(ctx context.Context, id, ownerID string) (*models.Hotel, error) {
	return hs.hotelsRepo.GetHotelForOwner(ctx, id, ownerID)
}

// UpdateHotel replaces the listing's editable fields. Freshly uploaded
// images are combined with whatever existing URLs the owner chose to keep.
func (hs *HotelService) UpdateHotel(ctx context.Context, hotelID, ownerID string, hotel *models.Hotel, retainedURLs []string, imageFiles []*multipart.FileHeader) (*models.Hotel, error) {
	existing, err := hs.hotelsRepo.GetHotelForOwner(ctx, hotelID, ownerID)
	if err != nil {
		return nil, err
	}

	uploadedURLs, err := helpers.UploadImages(ctx, hs.cld, imageFiles, helpers.HotelFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload images: %w", err)
	}

	update := bson.M{
		"name":          hotel.Name,
		"city":          hotel.City,
		"country":       hotel.Country,
		"description":   hotel.Description,
		"type":          hotel.Type,
		"pricePerNight": hotel.PricePerNight,
		"starRating":    hotel.StarRating,
		"adultCount":    hotel.AdultCount,
		"childCount":    hotel.ChildCount,
		"facilities":    hotel.Facilities,
		"imageUrls":     append(uploadedURLs, retainedURLs...),
		"lastUpdated":   time.Now(),
	}
	if hotel.Contact != nil {
		update["contact"] = hotel.Contact
	}
	if hotel.Policies != nil {
		update["policies"] = hotel.Policies
	}

	updated, err := hs.hotelsRepo.UpdateHotel(ctx, existing.ID.Hex(), update)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// IsNotFound reports whether err is the repo's missing-document error.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
