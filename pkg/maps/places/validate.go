package places

import (
	"fmt"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// ReviewsSortWithoutReviewsFieldError: a review order was requested but the
// field list leaves reviews out.
type ReviewsSortWithoutReviewsFieldError struct {
	SortOrder SortOrder
	Fields    string
}

func (e *ReviewsSortWithoutReviewsFieldError) Error() string {
	return fmt.Sprintf("maps: reviews sort (%s) requires the %q field, requested fields are %s",
		e.SortOrder.Label(), FieldReviews, e.Fields)
}

func (e *ReviewsSortWithoutReviewsFieldError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

// ReviewsNoTranslationsWithoutReviewsFieldError: untranslated reviews were
// requested but the field list leaves reviews out.
type ReviewsNoTranslationsWithoutReviewsFieldError struct {
	Fields string
}

func (e *ReviewsNoTranslationsWithoutReviewsFieldError) Error() string {
	return fmt.Sprintf("maps: reviews without translations require the %q field, requested fields are %s",
		FieldReviews, e.Fields)
}

func (e *ReviewsNoTranslationsWithoutReviewsFieldError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

var rules = []maps.Rule[params]{
	checkReviewsSort,
	checkReviewsNoTranslations,
}

func checkReviewsSort(p params) error {
	if p.reviewsSort != nil && !p.hasReviewsField() {
		return &ReviewsSortWithoutReviewsFieldError{SortOrder: *p.reviewsSort, Fields: joinFields(p.fields)}
	}
	return nil
}

func checkReviewsNoTranslations(p params) error {
	if p.reviewsNoTranslations != nil && !p.hasReviewsField() {
		return &ReviewsNoTranslationsWithoutReviewsFieldError{Fields: joinFields(p.fields)}
	}
	return nil
}
