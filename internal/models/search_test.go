package models

import (
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterAlwaysExcludesUnapproved(t *testing.T) {
	filter := SearchParams{}.BuildFilter()

	approved, ok := filter["isApproved"].(bson.M)
	if !ok {
		t.Fatalf("expected isApproved clause, got %v", filter["isApproved"])
	}
	if approved["$ne"] != false {
		t.Errorf("expected isApproved $ne false, got %v", approved["$ne"])
	}
}

func TestBuildFilterSingleWordDestination(t *testing.T) {
	filter := SearchParams{Destination: "Chennai"}.BuildFilter()

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause for single-word destination, got %v", filter)
	}
	if len(or) != 6 {
		t.Fatalf("expected 6 alternatives, got %d", len(or))
	}

	fields := make(map[string]primitive.Regex)
	for _, cond := range or {
		for field, value := range cond.(bson.M) {
			fields[field] = value.(primitive.Regex)
		}
	}

	for _, field := range []string{
		"city", "country", "name",
		"location.address.city", "location.address.country", "location.address.state",
	} {
		re, ok := fields[field]
		if !ok {
			t.Errorf("missing alternative for field %q", field)
			continue
		}
		if re.Pattern != "Chennai" || re.Options != "i" {
			t.Errorf("field %q: got pattern %q options %q", field, re.Pattern, re.Options)
		}
	}

	if _, ok := filter["$and"]; ok {
		t.Error("single-word destination must not produce an $and clause")
	}
}

func TestBuildFilterMultiWordDestinationMatchesNameOnly(t *testing.T) {
	filter := SearchParams{Destination: "Vinoth Grand Hotel"}.BuildFilter()

	and, ok := filter["$and"].(bson.A)
	if !ok {
		t.Fatalf("expected $and clause for multi-word destination, got %v", filter)
	}
	if len(and) != 3 {
		t.Fatalf("expected one condition per word, got %d", len(and))
	}

	words := []string{"Vinoth", "Grand", "Hotel"}
	for i, cond := range and {
		m := cond.(bson.M)
		if len(m) != 1 {
			t.Fatalf("condition %d targets %d fields, want name only", i, len(m))
		}
		re, ok := m["name"].(primitive.Regex)
		if !ok {
			t.Fatalf("condition %d does not match on name: %v", i, m)
		}
		if re.Pattern != words[i] || re.Options != "i" {
			t.Errorf("condition %d: got pattern %q options %q, want %q case-insensitive", i, re.Pattern, re.Options, words[i])
		}
	}

	if _, ok := filter["$or"]; ok {
		t.Error("multi-word destination must not fall back to the location $or")
	}
}

func TestBuildFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := SearchParams{Destination: "St. Lucia (West)"}.BuildFilter()

	and, ok := filter["$and"].(bson.A)
	if !ok {
		t.Fatalf("expected $and clause, got %v", filter)
	}

	want := []string{`St\.`, `Lucia`, `\(West\)`}
	for i, cond := range and {
		re := cond.(bson.M)["name"].(primitive.Regex)
		if re.Pattern != want[i] {
			t.Errorf("word %d: got pattern %q, want %q", i, re.Pattern, want[i])
		}
	}
}

func TestBuildFilterBlankDestinationAddsNoTextClause(t *testing.T) {
	filter := SearchParams{Destination: "   "}.BuildFilter()

	if _, ok := filter["$or"]; ok {
		t.Error("blank destination produced an $or clause")
	}
	if _, ok := filter["$and"]; ok {
		t.Error("blank destination produced an $and clause")
	}
}

func TestBuildFilterNumericAndListFilters(t *testing.T) {
	adults, children := 2, 1
	maxPrice := 150.0
	params := SearchParams{
		AdultCount: &adults,
		ChildCount: &children,
		Facilities: []string{"WiFi", "Parking"},
		Types:      []string{"Budget", "Luxury"},
		Stars:      []int{4, 5},
		MaxPrice:   &maxPrice,
	}

	filter := params.BuildFilter()

	if got := filter["adultCount"].(bson.M)["$gte"]; got != 2 {
		t.Errorf("adultCount: got %v, want $gte 2", got)
	}
	if got := filter["childCount"].(bson.M)["$gte"]; got != 1 {
		t.Errorf("childCount: got %v, want $gte 1", got)
	}

	facilities := filter["facilities"].(bson.M)["$all"].([]string)
	if len(facilities) != 2 || facilities[0] != "WiFi" || facilities[1] != "Parking" {
		t.Errorf("facilities: got %v, want $all of both", facilities)
	}

	types := filter["type"].(bson.M)["$in"].([]string)
	if len(types) != 2 {
		t.Errorf("types: got %v, want $in of both", types)
	}

	stars := filter["starRating"].(bson.M)["$in"].([]int)
	if len(stars) != 2 || stars[0] != 4 || stars[1] != 5 {
		t.Errorf("stars: got %v, want $in [4 5]", stars)
	}

	// The price bound is inclusive: a hotel priced exactly at maxPrice matches.
	if got := filter["pricePerNight"].(bson.M)["$lte"]; got != 150.0 {
		t.Errorf("pricePerNight: got %v, want $lte 150", got)
	}
}

func TestBuildFilterOmitsAbsentFilters(t *testing.T) {
	filter := SearchParams{}.BuildFilter()

	for _, field := range []string{"adultCount", "childCount", "facilities", "type", "starRating", "pricePerNight"} {
		if _, ok := filter[field]; ok {
			t.Errorf("unset filter %q leaked into the query", field)
		}
	}
}

func TestBuildSort(t *testing.T) {
	cases := []struct {
		option string
		key    string
		value  int
	}{
		{SortStarRating, "starRating", -1},
		{SortPricePerNightAsc, "pricePerNight", 1},
		{SortPricePerNightDesc, "pricePerNight", -1},
		{"", "createdAt", -1},
		{"bogus", "createdAt", -1},
	}

	for _, tc := range cases {
		sort := SearchParams{SortOption: tc.option}.BuildSort()
		if len(sort) != 1 {
			t.Fatalf("option %q: expected single sort key, got %v", tc.option, sort)
		}
		if sort[0].Key != tc.key || sort[0].Value != tc.value {
			t.Errorf("option %q: got %s=%v, want %s=%d", tc.option, sort[0].Key, sort[0].Value, tc.key, tc.value)
		}
	}
}

func TestParseSearchParams(t *testing.T) {
	values := url.Values{
		"destination": {"Chennai"},
		"adultCount":  {"2"},
		"childCount":  {"notanumber"},
		"facilities":  {"WiFi", ""},
		"stars":       {"5", "x", "3"},
		"maxPrice":    {"120.50"},
		"sortOption":  {SortPricePerNightAsc},
		"page":        {"4"},
	}

	params := ParseSearchParams(values)

	if params.Destination != "Chennai" {
		t.Errorf("destination: got %q", params.Destination)
	}
	if params.AdultCount == nil || *params.AdultCount != 2 {
		t.Errorf("adultCount: got %v", params.AdultCount)
	}
	if params.ChildCount != nil {
		t.Errorf("unparseable childCount should drop the filter, got %v", *params.ChildCount)
	}
	if len(params.Facilities) != 1 || params.Facilities[0] != "WiFi" {
		t.Errorf("facilities: got %v", params.Facilities)
	}
	if len(params.Stars) != 2 || params.Stars[0] != 5 || params.Stars[1] != 3 {
		t.Errorf("stars should keep only parseable values, got %v", params.Stars)
	}
	if params.MaxPrice == nil || *params.MaxPrice != 120.50 {
		t.Errorf("maxPrice: got %v", params.MaxPrice)
	}
	if params.SortOption != SortPricePerNightAsc {
		t.Errorf("sortOption: got %q", params.SortOption)
	}
	if params.Page != 4 {
		t.Errorf("page: got %d", params.Page)
	}
}

func TestParseSearchParamsPageDefaults(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-2"} {
		values := url.Values{}
		if raw != "" {
			values.Set("page", raw)
		}
		if got := ParseSearchParams(values).Page; got != 1 {
			t.Errorf("page %q: got %d, want 1", raw, got)
		}
	}
}

func TestSkip(t *testing.T) {
	cases := []struct {
		page int
		want int64
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{5, 40},
	}
	for _, tc := range cases {
		if got := (SearchParams{Page: tc.page}).Skip(); got != tc.want {
			t.Errorf("page %d: got skip %d, want %d", tc.page, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{23, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total); got != tc.want {
			t.Errorf("total %d: got %d pages, want %d", tc.total, got, tc.want)
		}
	}
}
