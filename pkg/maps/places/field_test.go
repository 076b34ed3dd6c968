package places

import (
	"testing"

	"github.com/richxcame/mapsclient/pkg/maps/mapstest"
	"github.com/stretchr/testify/assert"
)

func TestFieldsRoundTrip(t *testing.T) {
	mapstest.AssertCodeTable(t, "Field", Fields(), ParseField)
}

func TestSortOrdersRoundTrip(t *testing.T) {
	mapstest.AssertCodeTable(t, "SortOrder", SortOrders(), ParseSortOrder)
	assert.Equal(t, "Most Relevant", SortOrderMostRelevant.Label())
	assert.Equal(t, "Newest", SortOrderNewest.Label())
}
