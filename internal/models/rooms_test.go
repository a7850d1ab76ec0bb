package models

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRoomSearchFilterQuotesDestination(t *testing.T) {
	filter := roomSearchFilter(RoomSearchParams{Destination: "go.a*"})

	loc, ok := filter["location"].(bson.M)
	if !ok {
		t.Fatalf("expected a location condition, got %v", filter["location"])
	}
	if got, want := loc["$regex"], regexp.QuoteMeta("go.a*"); got != want {
		t.Errorf("destination regex = %q, want quoted %q", got, want)
	}
	if loc["$options"] != "i" {
		t.Errorf("destination match must stay case-insensitive, got %v", loc["$options"])
	}
}

func TestRoomSearchFilterOptionalFields(t *testing.T) {
	filter := roomSearchFilter(RoomSearchParams{})
	if len(filter) != 1 || filter["available"] != true {
		t.Fatalf("empty params must only require availability, got %v", filter)
	}

	filter = roomSearchFilter(RoomSearchParams{Guests: 3, RoomType: "suite", PriceMin: 100, PriceMax: 500})
	if capacity, ok := filter["capacity"].(bson.M); !ok || capacity["$gte"] != 3 {
		t.Errorf("capacity filter = %v, want $gte 3", filter["capacity"])
	}
	if filter["type"] != "suite" {
		t.Errorf("type filter = %v, want suite", filter["type"])
	}
	price, ok := filter["price"].(bson.M)
	if !ok || price["$gte"] != 100.0 || price["$lte"] != 500.0 {
		t.Errorf("price filter = %v, want 100..500", filter["price"])
	}
}
