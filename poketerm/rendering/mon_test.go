package rendering

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Rare Candy", DisplayName("rare-candy"))
	assert.Equal(t, "Inner Focus", DisplayName("inner_focus"))
	assert.Equal(t, "", DisplayName(""))
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status   uint32
		expected string
	}{
		{golurk.STATUS1_NONE, ""},
		{2, "SLP"},
		{golurk.STATUS1_POISON, "PSN"},
		{golurk.STATUS1_TOXIC_POISON | golurk.STATUS1_TOXIC_COUNTER, "TOX"},
		{golurk.STATUS1_BURN, "BRN"},
		{golurk.STATUS1_FREEZE, "FRZ"},
		{golurk.STATUS1_PARALYSIS, "PAR"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, StatusText(test.status), "status %#x", test.status)
	}
}

func TestGenderSymbol(t *testing.T) {
	assert.Equal(t, "♂", GenderSymbol(golurk.MON_MALE))
	assert.Equal(t, "♀", GenderSymbol(golurk.MON_FEMALE))
	assert.Equal(t, "", GenderSymbol(golurk.MON_GENDERLESS))
}

func TestHPBar(t *testing.T) {
	cells := func(bar string) int {
		return strings.Count(bar, "█")
	}

	assert.Equal(t, 10, lipgloss.Width(HPBar(5, 10, 10)))
	assert.Equal(t, 5, cells(HPBar(5, 10, 10)))
	assert.Equal(t, 10, cells(HPBar(10, 10, 10)))
	assert.Equal(t, 0, cells(HPBar(0, 10, 10)))
	// a sliver of HP is still visible
	assert.Equal(t, 1, cells(HPBar(1, 300, 10)))
	// HP above max never overflows the bar
	assert.Equal(t, 10, cells(HPBar(65000, 20, 10)))
	assert.Equal(t, 0, cells(HPBar(0, 0, 10)))
}

func TestHPColor(t *testing.T) {
	assert.Equal(t, hpGoodColor, hpColor(11, 20))
	assert.Equal(t, hpMidColor, hpColor(10, 20))
	assert.Equal(t, hpMidColor, hpColor(5, 20))
	assert.Equal(t, hpLowColor, hpColor(4, 20))
}
