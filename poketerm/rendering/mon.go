package rendering

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	hpGoodColor = lipgloss.Color("34")
	hpMidColor  = lipgloss.Color("214")
	hpLowColor  = lipgloss.Color("196")

	titleCaser  = cases.Title(language.English)
	nameCleaner = strings.NewReplacer("-", " ", "_", " ")
)

// DisplayName turns data file names like "rare-candy" or "inner_focus" into "Rare Candy"
func DisplayName(name string) string {
	return titleCaser.String(nameCleaner.Replace(name))
}

// StatusText abbreviates a primary status the way the summary screen does, "" when healthy
func StatusText(status uint32) string {
	switch {
	case status&golurk.STATUS1_SLEEP != 0:
		return "SLP"
	case status&golurk.STATUS1_TOXIC_POISON != 0:
		return "TOX"
	case status&golurk.STATUS1_POISON != 0:
		return "PSN"
	case status&golurk.STATUS1_BURN != 0:
		return "BRN"
	case status&golurk.STATUS1_FREEZE != 0:
		return "FRZ"
	case status&golurk.STATUS1_PARALYSIS != 0:
		return "PAR"
	}

	return ""
}

// GenderSymbol is empty for genderless creatures
func GenderSymbol(gender uint8) string {
	switch gender {
	case golurk.MON_MALE:
		return "♂"
	case golurk.MON_FEMALE:
		return "♀"
	}

	return ""
}

func hpColor(hp uint16, maxHP uint16) lipgloss.Color {
	switch {
	case uint32(hp)*2 > uint32(maxHP):
		return hpGoodColor
	case uint32(hp)*5 > uint32(maxHP):
		return hpMidColor
	}

	return hpLowColor
}

// HPBar draws hp/maxHP as a bar of width cells. Any remaining HP shows at least one cell.
func HPBar(hp uint16, maxHP uint16, width int) string {
	filled := 0
	if maxHP > 0 {
		filled = int(uint32(min(hp, maxHP)) * uint32(width) / uint32(maxHP))
		if filled == 0 && hp > 0 {
			filled = 1
		}
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(hpColor(hp, maxHP)).Render(bar)
}

func HPText(hp uint16, maxHP uint16) string {
	return fmt.Sprintf("%d/%d", hp, maxHP)
}
