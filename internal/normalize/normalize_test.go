package normalize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ewelton/faredrop/internal/models"
)

func TestCombinedRoundTripCents(t *testing.T) {
	// two one-ways beat the published round trip here
	assert.Equal(t, int64(22000), CombinedRoundTripCents(10000, 12000, 18000))

	// published round trip beats the one-way total
	assert.Equal(t, int64(25000), CombinedRoundTripCents(20000, 12000, 13000))
}

func TestCombinedRoundTripCentsUnknownPrices(t *testing.T) {
	// unknown outbound one-way: only the round-trip combination prices
	assert.Equal(t, int64(30000), CombinedRoundTripCents(models.PriceUnknown, 12000, 18000))

	// unknown inbound one-way leaves nothing priceable
	assert.Equal(t, models.PriceUnknown, CombinedRoundTripCents(10000, models.PriceUnknown, 18000))
}

func TestBookingURL(t *testing.T) {
	url := BookingURL(Trip{
		Origin:        "DFW",
		Destination:   "BOS",
		DepartureDate: "2099-01-10",
		ReturnDate:    "2099-01-17",
		Adults:        2,
		Children:      1,
	})

	assert.Equal(t, "https://skiplagged.com/flights/DFW/BOS/2099-01-10/2099-01-17?adults=2&children=1", url)
}

func TestDealNilOffer(t *testing.T) {
	assert.Nil(t, Deal(context.Background(), nil, nil, Trip{}))
}
