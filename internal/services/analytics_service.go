package services

import (
	"context"
	"sort"
	"time"

	"github.com/kitad/staybook/internal/models"
)

type TrendPoint struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue,omitempty"`
	Bookings int     `json:"bookings,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

type PerformerStats struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type ForecastPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type AnalyticsData struct {
	Overview struct {
		TotalRevenue  float64 `json:"totalRevenue"`
		TotalBookings int     `json:"totalBookings"`
		AverageRating float64 `json:"averageRating"`
		OccupancyRate float64 `json:"occupancyRate"`
	} `json:"overview"`
	Trends struct {
		Revenue  []TrendPoint `json:"revenue"`
		Bookings []TrendPoint `json:"bookings"`
		Ratings  []TrendPoint `json:"ratings"`
	} `json:"trends"`
	TopPerformers struct {
		Hotels       []PerformerStats `json:"hotels"`
		Destinations []PerformerStats `json:"destinations"`
	} `json:"topPerformers"`
	Forecasts struct {
		Revenue  []ForecastPoint `json:"revenue"`
		Bookings []ForecastPoint `json:"bookings"`
	} `json:"forecasts"`
}

type AnalyticsService struct {
	hotelsRepo   models.HotelsRepo
	bookingsRepo models.BookingsRepo
}

func NewAnalyticsService(hotelsRepo models.HotelsRepo, bookingsRepo models.BookingsRepo) *AnalyticsService {
	return &AnalyticsService{
		hotelsRepo:   hotelsRepo,
		bookingsRepo: bookingsRepo,
	}
}

// Dashboard aggregates the owner's hotels and their bookings into revenue
// and booking trends, top performers and a naive next-month projection.
func (as *AnalyticsService) Dashboard(ctx context.Context, ownerID string) (*AnalyticsData, error) {
	hotels, err := as.hotelsRepo.ListHotelsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	hotelIDs := make([]string, 0, len(hotels))
	for _, h := range hotels {
		hotelIDs = append(hotelIDs, h.ID.Hex())
	}

	bookings, err := as.bookingsRepo.ListBookingsByHotels(ctx, hotelIDs)
	if err != nil {
		return nil, err
	}

	data := &AnalyticsData{}

	var totalRevenue float64
	for _, b := range bookings {
		totalRevenue += b.TotalCost
	}
	data.Overview.TotalRevenue = totalRevenue
	data.Overview.TotalBookings = len(bookings)

	var totalRating float64
	for _, h := range hotels {
		totalRating += float64(h.StarRating)
	}
	if len(hotels) > 0 {
		data.Overview.AverageRating = totalRating / float64(len(hotels))
	}
	// Occupancy needs per-day room inventory, which is not tracked.
	data.Overview.OccupancyRate = 0

	revenueByDate := map[string]float64{}
	bookingsByDate := map[string]int{}
	for _, b := range bookings {
		date := b.CreatedAt.UTC().Format("2006-01-02")
		revenueByDate[date] += b.TotalCost
		bookingsByDate[date]++
	}
	dates := make([]string, 0, len(revenueByDate))
	for date := range revenueByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	data.Trends.Revenue = make([]TrendPoint, 0, len(dates))
	data.Trends.Bookings = make([]TrendPoint, 0, len(dates))
	for _, date := range dates {
		data.Trends.Revenue = append(data.Trends.Revenue, TrendPoint{Date: date, Revenue: revenueByDate[date]})
		data.Trends.Bookings = append(data.Trends.Bookings, TrendPoint{Date: date, Bookings: bookingsByDate[date]})
	}
	data.Trends.Ratings = []TrendPoint{{Date: today(), Rating: data.Overview.AverageRating}}

	bookingsByHotel := map[string][]*models.Booking{}
	for _, b := range bookings {
		bookingsByHotel[b.HotelID] = append(bookingsByHotel[b.HotelID], b)
	}

	topHotels := make([]PerformerStats, 0, len(hotels))
	destinations := map[string]*PerformerStats{}
	destOrder := []string{}
	for _, h := range hotels {
		hb := bookingsByHotel[h.ID.Hex()]
		var revenue float64
		for _, b := range hb {
			revenue += b.TotalCost
		}
		topHotels = append(topHotels, PerformerStats{Name: h.Name, Bookings: len(hb), Revenue: revenue})

		if d, ok := destinations[h.City]; ok {
			d.Bookings += len(hb)
			d.Revenue += revenue
		} else {
			destinations[h.City] = &PerformerStats{Name: h.City, Bookings: len(hb), Revenue: revenue}
			destOrder = append(destOrder, h.City)
		}
	}
	sort.SliceStable(topHotels, func(i, j int) bool { return topHotels[i].Revenue > topHotels[j].Revenue })
	if len(topHotels) > 5 {
		topHotels = topHotels[:5]
	}
	data.TopPerformers.Hotels = topHotels

	topDestinations := make([]PerformerStats, 0, len(destOrder))
	for _, city := range destOrder {
		topDestinations = append(topDestinations, *destinations[city])
	}
	sort.SliceStable(topDestinations, func(i, j int) bool { return topDestinations[i].Revenue > topDestinations[j].Revenue })
	if len(topDestinations) > 5 {
		topDestinations = topDestinations[:5]
	}
	data.TopPerformers.Destinations = topDestinations

	// Naive projection: carry the current totals forward with 10% growth.
	data.Forecasts.Revenue = []ForecastPoint{{Date: "Next Month", Value: totalRevenue * 1.1}}
	data.Forecasts.Bookings = []ForecastPoint{{Date: "Next Month", Value: float64(len(bookings)) * 1.1}}

	return data, nil
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
