package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wunderwohn/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestSearchFilter_NoCriteria(t *testing.T) {
	f := searchFilter(domain.SearchCriteria{})
	assert.Equal(t, bson.M{"available": true}, f)
}

func TestSearchFilter_PriceRangeCombines(t *testing.T) {
	f := searchFilter(domain.SearchCriteria{MinPrice: ptr(150.0), MaxPrice: ptr(200.0)})
	require.Contains(t, f, "price_per_night")
	assert.Equal(t, bson.M{"$gte": 150.0, "$lte": 200.0}, f["price_per_night"])
	assert.Equal(t, true, f["available"])
}

func TestSearchFilter_TextFieldsAreCaseInsensitive(t *testing.T) {
	f := searchFilter(domain.SearchCriteria{City: ptr("ber"), PropertyType: ptr("apart")})

	city, ok := f["city"].(primitive.Regex)
	require.True(t, ok, "city should be a regex")
	assert.Equal(t, "ber", city.Pattern)
	assert.Equal(t, "i", city.Options)

	pt, ok := f["property_type"].(primitive.Regex)
	require.True(t, ok, "property_type should be a regex")
	assert.Equal(t, "apart", pt.Pattern)
	assert.Equal(t, "i", pt.Options)
}

func TestSearchFilter_QuotesRegexMeta(t *testing.T) {
	f := searchFilter(domain.SearchCriteria{City: ptr("a.b*")})
	city := f["city"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, city.Pattern)
}

func TestSearchFilter_MinGuests(t *testing.T) {
	f := searchFilter(domain.SearchCriteria{MinGuests: ptr(4)})
	assert.Equal(t, bson.M{"$gte": 4}, f["max_guests"])
}

func TestOverlapFilter(t *testing.T) {
	in := domain.NewDate(2025, 6, 1)
	out := domain.NewDate(2025, 6, 4)
	f := overlapFilter("p1", in, out)

	assert.Equal(t, bson.M{
		"property_id": "p1",
		"status":      domain.StatusConfirmed,
		"check_in":    bson.M{"$lt": "2025-06-04"},
		"check_out":   bson.M{"$gt": "2025-06-01"},
	}, f)
}

func TestBookingDocRoundTrip(t *testing.T) {
	b := domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		PropertyID: "p1",
		CheckIn:    domain.NewDate(2025, 6, 1),
		CheckOut:   domain.NewDate(2025, 6, 4),
		Guests:     2,
		TotalPrice: 360,
		Status:     domain.StatusConfirmed,
	}
	doc := fromBooking(b)
	assert.Equal(t, "2025-06-01", doc.CheckIn)
	assert.Equal(t, "2025-06-04", doc.CheckOut)

	back, err := doc.toBooking()
	require.NoError(t, err)
	assert.Equal(t, b, back)

	doc.CheckIn = "garbage"
	_, err = doc.toBooking()
	assert.Error(t, err)
}
