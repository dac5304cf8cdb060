// Package listing wires the generic cleaning transforms into the fixed
// pipeline for AB-NYC short-term rental data.
package listing

import (
	b "github.com/rentalytics/bnbscrub/pkg/bnbscrub"
)

// Column names of the AB-NYC export.
const (
	ColID               = "id"
	ColName             = "name"
	ColHostID           = "host_id"
	ColHostName         = "host_name"
	ColNeighGroup       = "neighbourhood_group"
	ColNeighbourhood    = "neighbourhood"
	ColLatitude         = "latitude"
	ColLongitude        = "longitude"
	ColRoomType         = "room_type"
	ColPrice            = "price"
	ColMinimumNights    = "minimum_nights"
	ColNumberOfReviews  = "number_of_reviews"
	ColLastReview       = "last_review"
	ColReviewsPerMonth  = "reviews_per_month"
	ColHostListingCount = "calculated_host_listings_count"
	ColAvailability365  = "availability_365"
)

// Sentinels substituted for missing text fields.
const (
	NoNameSentinel    = "No Name"
	AnonymousSentinel = "Anonymous"
)

// ReviewDateLayout is the calendar-date format of last_review.
const ReviewDateLayout = "2006-01-02"

// NYC bounding box and validity caps. Bounds are inclusive; rows at the
// boundary are retained.
const (
	MinLatitude  = 40.5
	MaxLatitude  = 41.0
	MinLongitude = -74.5
	MaxLongitude = -73.0
	MaxPrice     = 1000.0
	MaxMinNights = 365
)

// RequiredColumns lists the columns the cleaning pipeline must be able to
// locate; a dataset missing any of them is a schema error.
func RequiredColumns() []string {
	return []string{
		ColName, ColHostName, ColNeighGroup, ColNeighbourhood,
		ColLatitude, ColLongitude, ColRoomType, ColPrice,
		ColMinimumNights, ColLastReview, ColReviewsPerMonth,
	}
}

// textColumns are trimmed and title-cased during normalization.
func textColumns() []string {
	return []string{ColNeighbourhood, ColNeighGroup, ColRoomType}
}

// BaseSchema covers the required columns only.
func BaseSchema() b.Schema {
	return b.Schema{Columns: []b.ColumnSchema{
		{Name: ColName, Type: b.KindString, Nullable: true},
		{Name: ColHostName, Type: b.KindString, Nullable: true},
		{Name: ColNeighGroup, Type: b.KindString, Nullable: true},
		{Name: ColNeighbourhood, Type: b.KindString, Nullable: true},
		{Name: ColLatitude, Type: b.KindFloat, Nullable: true},
		{Name: ColLongitude, Type: b.KindFloat, Nullable: true},
		{Name: ColRoomType, Type: b.KindString, Nullable: true},
		{Name: ColPrice, Type: b.KindFloat, Nullable: true},
		{Name: ColMinimumNights, Type: b.KindInt, Nullable: true},
		{Name: ColLastReview, Type: b.KindString, Nullable: true},
		{Name: ColReviewsPerMonth, Type: b.KindFloat, Nullable: true},
	}}
}

// FullSchema is the complete AB-NYC column set. The extra columns are
// optional: they pass through cleaning untouched and may be absent from
// the input file.
func FullSchema() b.Schema {
	s := b.Schema{Columns: []b.ColumnSchema{
		{Name: ColID, Type: b.KindInt, Nullable: true},
		{Name: ColName, Type: b.KindString, Nullable: true},
		{Name: ColHostID, Type: b.KindInt, Nullable: true},
		{Name: ColHostName, Type: b.KindString, Nullable: true},
		{Name: ColNeighGroup, Type: b.KindString, Nullable: true},
		{Name: ColNeighbourhood, Type: b.KindString, Nullable: true},
		{Name: ColLatitude, Type: b.KindFloat, Nullable: true},
		{Name: ColLongitude, Type: b.KindFloat, Nullable: true},
		{Name: ColRoomType, Type: b.KindString, Nullable: true},
		{Name: ColPrice, Type: b.KindFloat, Nullable: true},
		{Name: ColMinimumNights, Type: b.KindInt, Nullable: true},
		{Name: ColNumberOfReviews, Type: b.KindInt, Nullable: true},
		{Name: ColLastReview, Type: b.KindString, Nullable: true},
		{Name: ColReviewsPerMonth, Type: b.KindFloat, Nullable: true},
		{Name: ColHostListingCount, Type: b.KindInt, Nullable: true},
		{Name: ColAvailability365, Type: b.KindInt, Nullable: true},
	}}
	return s
}
