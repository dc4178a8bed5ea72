package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderNumberEmpty(t *testing.T) {
	assert.Equal(t, "DH001", NextOrderNumber(nil))
}

func TestNextOrderNumberUsesHighestSuffix(t *testing.T) {
	existing := []Order{
		{OrderNumber: "DH001"},
		{OrderNumber: "DH003"},
	}
	// one past the highest suffix, not a count
	assert.Equal(t, "DH004", NextOrderNumber(existing))
}

func TestNextOrderNumberIgnoresForeignNumbers(t *testing.T) {
	existing := []Order{
		{OrderNumber: "N/A"},
		{OrderNumber: "DH002"},
		{OrderNumber: "XX009"},
	}
	assert.Equal(t, "DH003", NextOrderNumber(existing))
}

func TestNextOrderNumberGrowsPastWidth(t *testing.T) {
	existing := []Order{{OrderNumber: "DH999"}}
	assert.Equal(t, "DH1000", NextOrderNumber(existing))
}
