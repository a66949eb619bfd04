package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ewelton/faredrop/internal/dates"
)

func TestGenerateCrossProduct(t *testing.T) {
	origins := []string{"DAL", "DFW"}
	destinations := []string{"MHT", "BOS"}
	pairs := []dates.Pair{
		{Departure: "2099-01-10", Return: "2099-01-17"},
		{Departure: "2099-02-10", Return: "2099-02-17"},
	}

	options := Generate(origins, destinations, pairs)

	assert.Len(t, options, len(origins)*len(destinations)*len(pairs))

	// origin-major, then destination, then date pair
	assert.Equal(t, Option{Origin: "DAL", Destination: "MHT", Dates: pairs[0]}, options[0])
	assert.Equal(t, Option{Origin: "DAL", Destination: "MHT", Dates: pairs[1]}, options[1])
	assert.Equal(t, Option{Origin: "DAL", Destination: "BOS", Dates: pairs[0]}, options[2])
	assert.Equal(t, Option{Origin: "DFW", Destination: "MHT", Dates: pairs[0]}, options[4])
	assert.Equal(t, Option{Origin: "DFW", Destination: "BOS", Dates: pairs[1]}, options[7])
}

func TestGenerateDoesNotFilterIdenticalPairs(t *testing.T) {
	options := Generate([]string{"DFW"}, []string{"DFW"}, []dates.Pair{
		{Departure: "2099-01-10", Return: "2099-01-17"},
	})

	assert.Len(t, options, 1)
	assert.Equal(t, "DFW", options[0].Origin)
	assert.Equal(t, "DFW", options[0].Destination)
}

func TestGenerateEmptyDatePairs(t *testing.T) {
	options := Generate([]string{"DFW"}, []string{"BOS"}, nil)
	assert.Empty(t, options)
}
