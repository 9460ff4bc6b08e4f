package filters

import (
	"reflect"
	"testing"
	"time"

	"homefeed-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(f float64) *float64 { return &f }

var (
	d1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
)

func dateConjunct(predicate bson.M, t *testing.T) bson.M {
	t.Helper()
	window, ok := predicate["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("predicate missing createdAt window: %v", predicate)
	}
	return window
}

func TestBuildDateWindowInclusive(t *testing.T) {
	predicate := Build(&models.RangeFilter{StartDate: d1, EndDate: d2})

	window := dateConjunct(predicate, t)
	if window["$gte"] != d1 || window["$lte"] != d2 {
		t.Errorf("window = %v; want closed [%v, %v]", window, d1, d2)
	}
}

func TestBuildNoPriceBoundsOmitsPriceConjunct(t *testing.T) {
	predicate := Build(&models.RangeFilter{StartDate: d1, EndDate: d2})

	if _, ok := predicate[PriceField]; ok {
		t.Errorf("unbounded filter must not constrain price: %v", predicate)
	}
	if len(predicate) != 1 {
		t.Errorf("predicate = %v; want date conjunct only", predicate)
	}
}

func TestBuildMinPriceOnly(t *testing.T) {
	predicate := Build(&models.RangeFilter{StartDate: d1, EndDate: d2, MinPrice: floatPtr(100000)})

	want := bson.M{"$ne": nil, "$gte": 100000.0}
	if !reflect.DeepEqual(predicate[PriceField], want) {
		t.Errorf("price conjunct = %v; want %v", predicate[PriceField], want)
	}
}

func TestBuildMaxPriceOnly(t *testing.T) {
	predicate := Build(&models.RangeFilter{StartDate: d1, EndDate: d2, MaxPrice: floatPtr(750000)})

	want := bson.M{"$ne": nil, "$lte": 750000.0}
	if !reflect.DeepEqual(predicate[PriceField], want) {
		t.Errorf("price conjunct = %v; want %v", predicate[PriceField], want)
	}
}

func TestBuildBothPriceBounds(t *testing.T) {
	predicate := Build(&models.RangeFilter{
		StartDate: d1,
		EndDate:   d2,
		MinPrice:  floatPtr(100000),
		MaxPrice:  floatPtr(500000),
	})

	want := bson.M{"$ne": nil, "$gte": 100000.0, "$lte": 500000.0}
	if !reflect.DeepEqual(predicate[PriceField], want) {
		t.Errorf("price conjunct = %v; want %v", predicate[PriceField], want)
	}

	// date window is still a mandatory conjunct
	window := dateConjunct(predicate, t)
	if window["$gte"] != d1 || window["$lte"] != d2 {
		t.Errorf("window = %v; want [%v, %v]", window, d1, d2)
	}
}

func TestBuildBoundedPriceRequiresPresence(t *testing.T) {
	predicate := Build(&models.RangeFilter{StartDate: d1, EndDate: d2, MinPrice: floatPtr(100000)})

	conjunct, ok := predicate[PriceField].(bson.M)
	if !ok {
		t.Fatalf("expected price conjunct, got %v", predicate)
	}
	// $ne nil filters out documents where the price field is missing or null
	if ne, ok := conjunct["$ne"]; !ok || ne != nil {
		t.Errorf("price conjunct %v must require a non-null price", conjunct)
	}
}

func TestPriceBoundKinds(t *testing.T) {
	tests := []struct {
		name   string
		filter models.RangeFilter
		want   models.PriceBoundKind
	}{
		{"neither", models.RangeFilter{}, models.PriceUnbounded},
		{"min only", models.RangeFilter{MinPrice: floatPtr(1)}, models.PriceMinOnly},
		{"max only", models.RangeFilter{MaxPrice: floatPtr(2)}, models.PriceMaxOnly},
		{"both", models.RangeFilter{MinPrice: floatPtr(1), MaxPrice: floatPtr(2)}, models.PriceBetween},
	}

	for _, tt := range tests {
		if got := tt.filter.PriceBound(); got != tt.want {
			t.Errorf("%s: PriceBound() = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestDateWindow(t *testing.T) {
	predicate := DateWindow(d1, d2)

	want := bson.M{"createdAt": bson.M{"$gte": d1, "$lte": d2}}
	if !reflect.DeepEqual(predicate, want) {
		t.Errorf("DateWindow = %v; want %v", predicate, want)
	}
}
