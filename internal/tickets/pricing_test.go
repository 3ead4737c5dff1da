package tickets_test

import (
	"testing"

	"stagepass/internal/seats"
	"stagepass/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingStrategies(t *testing.T) {
	hall := tickets.HallPricing{}
	assert.Equal(t, 300.0, hall.CalculatePrice())
	assert.Equal(t, "Hall: 300", hall.Description())

	balcony := tickets.BalconyPricing{}
	assert.Equal(t, 250.0, balcony.CalculatePrice())
	assert.Equal(t, "Balcony: 250", balcony.Description())
}

func TestPricingForLocation(t *testing.T) {
	hall, err := tickets.PricingForLocation("Hall")
	require.NoError(t, err)
	assert.Equal(t, 300.0, hall.CalculatePrice())

	balcony, err := tickets.PricingForLocation("Balcony")
	require.NoError(t, err)
	assert.Equal(t, 250.0, balcony.CalculatePrice())

	_, err = tickets.PricingForLocation("Orchestra")
	assert.ErrorIs(t, err, seats.ErrInvalidLocation)

	// Section names are case sensitive
	_, err = tickets.PricingForLocation("hall")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Available", "Sold", "Returned"} {
		status, err := tickets.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, tickets.Status(valid), status)
		assert.True(t, status.IsValid())
	}

	for _, invalid := range []string{"", "sold", "SOLD", "Cancelled"} {
		_, err := tickets.ParseStatus(invalid)
		assert.ErrorIs(t, err, tickets.ErrInvalidStatus)
	}

	assert.False(t, tickets.Status("Pending").IsValid())
}
