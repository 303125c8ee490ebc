package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wunderwohn/internal/domain"
)

// searchFilter translates the optional criteria into one Mongo filter.
// Availability is a non-optional constraint; everything else ANDs in only
// when set.
func searchFilter(c domain.SearchCriteria) bson.M {
	f := bson.M{"available": true}
	if c.City != nil {
		f["city"] = ciContains(*c.City)
	}
	price := bson.M{}
	if c.MinPrice != nil {
		price["$gte"] = *c.MinPrice
	}
	if c.MaxPrice != nil {
		price["$lte"] = *c.MaxPrice
	}
	if len(price) > 0 {
		f["price_per_night"] = price
	}
	if c.MinGuests != nil {
		f["max_guests"] = bson.M{"$gte": *c.MinGuests}
	}
	if c.PropertyType != nil {
		f["property_type"] = ciContains(*c.PropertyType)
	}
	return f
}

// ciContains is a case-insensitive substring match with regex metacharacters
// neutralized.
func ciContains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// overlapFilter matches confirmed bookings whose [check_in, check_out)
// intersects [in, out). Dates are ISO strings, so $lt/$gt compare in
// calendar order.
func overlapFilter(propertyID string, in, out domain.Date) bson.M {
	return bson.M{
		"property_id": propertyID,
		"status":      domain.StatusConfirmed,
		"check_in":    bson.M{"$lt": out.String()},
		"check_out":   bson.M{"$gt": in.String()},
	}
}
