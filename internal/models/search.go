package models

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchPageSize is the fixed public-search page size.
const SearchPageSize = 10

const (
	SortStarRating        = "starRating"
	SortPricePerNightAsc  = "pricePerNightAsc"
	SortPricePerNightDesc = "pricePerNightDesc"
)

// SearchParams is the coerced form of the public hotel-search query string.
// Every filter dimension is optional; zero values mean "no constraint".
type SearchParams struct {
	Destination string
	AdultCount  *int
	ChildCount  *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *float64
	SortOption  string
	Page        int
}

// ParseSearchParams coerces the raw query string once at the boundary.
// Unparseable numeric values drop their filter; an unparseable page
// defaults to 1.
func ParseSearchParams(values url.Values) SearchParams {
	params := SearchParams{
		Destination: values.Get("destination"),
		Facilities:  nonEmpty(values["facilities"]),
		Types:       nonEmpty(values["types"]),
		SortOption:  values.Get("sortOption"),
		Page:        1,
	}

	if v := values.Get("adultCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.AdultCount = &n
		}
	}
	if v := values.Get("childCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.ChildCount = &n
		}
	}
	for _, s := range values["stars"] {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			params.Stars = append(params.Stars, n)
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &f
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			params.Page = n
		}
	}

	return params
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BuildFilter translates the parameters into a Mongo filter document.
//
// Hotels explicitly flagged unapproved are always excluded; documents
// without the flag predate moderation and stay visible.
//
// Destination matching is intentionally asymmetric: a single word matches
// any of the location fields or the name, while a multi-word query must
// have every word in the hotel name. "Vinoth Grand Hotel" should match
// only hotels carrying all three words in the name, not every hotel in a
// city that happens to share one word.
func (p SearchParams) BuildFilter() bson.M {
	filter := bson.M{
		"isApproved": bson.M{"$ne": false},
	}

	destination := strings.TrimSpace(p.Destination)
	if destination != "" {
		words := strings.Fields(regexp.QuoteMeta(destination))
		if len(words) == 1 {
			re := primitive.Regex{Pattern: words[0], Options: "i"}
			filter["$or"] = bson.A{
				bson.M{"city": re},
				bson.M{"country": re},
				bson.M{"location.address.city": re},
				bson.M{"location.address.country": re},
				bson.M{"location.address.state": re},
				bson.M{"name": re},
			}
		} else if len(words) > 1 {
			conditions := bson.A{}
			for _, word := range words {
				conditions = append(conditions, bson.M{
					"name": primitive.Regex{Pattern: word, Options: "i"},
				})
			}
			filter["$and"] = conditions
		}
	}

	if p.AdultCount != nil {
		filter["adultCount"] = bson.M{"$gte": *p.AdultCount}
	}
	if p.ChildCount != nil {
		filter["childCount"] = bson.M{"$gte": *p.ChildCount}
	}
	if len(p.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": p.Facilities}
	}
	if len(p.Types) > 0 {
		filter["type"] = bson.M{"$in": p.Types}
	}
	if len(p.Stars) > 0 {
		filter["starRating"] = bson.M{"$in": p.Stars}
	}
	if p.MaxPrice != nil {
		filter["pricePerNight"] = bson.M{"$lte": *p.MaxPrice}
	}

	return filter
}

// BuildSort maps the sort token onto a Mongo sort document. Unrecognized
// tokens fall back to newest-created-first.
func (p SearchParams) BuildSort() bson.D {
	switch p.SortOption {
	case SortStarRating:
		return bson.D{{Key: "starRating", Value: -1}}
	case SortPricePerNightAsc:
		return bson.D{{Key: "pricePerNight", Value: 1}}
	case SortPricePerNightDesc:
		return bson.D{{Key: "pricePerNight", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// Skip returns the page window offset.
func (p SearchParams) Skip() int64 {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return int64(page-1) * SearchPageSize
}

// TotalPages reports ceil(total / SearchPageSize).
func TotalPages(total int64) int {
	return int(math.Ceil(float64(total) / float64(SearchPageSize)))
}
