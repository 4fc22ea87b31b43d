package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
)

var (
	summaryStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 2)
	summaryHeaderStyle  = lipgloss.NewStyle().Bold(true)
	summarySectionStyle = lipgloss.NewStyle().PaddingTop(1)
)

type statRow struct {
	name  string
	stat  uint8
	value func(mon *golurk.Pokemon) uint16
}

// Summary screen order, which is not storage order
var statRows = [golurk.NUM_STATS]statRow{
	{"HP", golurk.STAT_HP, func(mon *golurk.Pokemon) uint16 { return mon.MaxHP }},
	{"Attack", golurk.STAT_ATK, func(mon *golurk.Pokemon) uint16 { return mon.Attack }},
	{"Defense", golurk.STAT_DEF, func(mon *golurk.Pokemon) uint16 { return mon.Defense }},
	{"Sp. Atk", golurk.STAT_SPATK, func(mon *golurk.Pokemon) uint16 { return mon.SpAttack }},
	{"Sp. Def", golurk.STAT_SPDEF, func(mon *golurk.Pokemon) uint16 { return mon.SpDefense }},
	{"Speed", golurk.STAT_SPEED, func(mon *golurk.Pokemon) uint16 { return mon.Speed }},
}

func natureMark(nature uint8, stat uint8) string {
	if stat == golurk.STAT_HP {
		return " "
	}

	switch golurk.NATURES[nature].StatMods[stat-1] {
	case 1:
		return "+"
	case -1:
		return "-"
	}
	return " "
}

func pokerusText(pokerus uint32) string {
	switch {
	case pokerus == 0:
		return "None"
	case pokerus&golurk.POKERUS_DAYS_MASK == 0:
		return "Cured"
	}

	return fmt.Sprintf("Infected (%d days)", pokerus&golurk.POKERUS_DAYS_MASK)
}

func summaryHeader(mon *golurk.Pokemon) string {
	species := mon.Species()
	info := golurk.GlobalData.GetSpecies(species)

	title := fmt.Sprintf("%s  Lv. %d %s", mon.Box.Nickname(), mon.Level, rendering.GenderSymbol(golurk.GetGender(mon)))
	if golurk.IsShiny(&mon.Box) {
		title += " ★"
	}

	types := golurk.TypeName(info.Types[0])
	if info.Types[1] != info.Types[0] {
		types += "/" + golurk.TypeName(info.Types[1])
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summaryHeaderStyle.Render(title),
		fmt.Sprintf("No. %03d %s  %s", golurk.SpeciesToNationalPokedexNum(species), golurk.GetSpeciesName(species), types),
		fmt.Sprintf("HP %s %s", rendering.HPBar(mon.HP, mon.MaxHP, 20), rendering.HPText(mon.HP, mon.MaxHP)),
	)
}

func summaryInfo(mon *golurk.Pokemon, profile golurk.Profile) string {
	nature := golurk.GetNature(mon)
	ability := golurk.GetMonAbility(mon)

	heldItem := "None"
	if item := uint16(mon.Get(golurk.FIELD_HELD_ITEM)); item != golurk.ITEM_NONE {
		heldItem = rendering.DisplayName(golurk.GlobalData.GetItem(item).Name)
	}

	ot := fmt.Sprintf("OT %s  ID %05d", mon.Box.OTName(), mon.Get(golurk.FIELD_OT_ID)&0xFFFF)
	if golurk.IsTradedMon(&mon.Box, profile) {
		ot += "  (traded)"
	}

	status := rendering.StatusText(mon.Status)
	if status == "" {
		status = "OK"
	}

	lines := []string{
		ot,
		fmt.Sprintf("Nature %s  Ability %s", golurk.NATURES[nature].Name, rendering.DisplayName(golurk.ABILITY_NAMES[ability])),
		fmt.Sprintf("Item %s  Status %s", heldItem, status),
		fmt.Sprintf("Friendship %d  Pokerus %s", mon.Get(golurk.FIELD_FRIENDSHIP), pokerusText(mon.Get(golurk.FIELD_POKERUS))),
	}

	exp := mon.Get(golurk.FIELD_EXP)
	if mon.Level < golurk.MAX_LEVEL {
		growth := golurk.GlobalData.GetSpecies(mon.Species()).GrowthRate
		next := golurk.GetExpForLevel(growth, mon.Level+1)
		lines = append(lines, fmt.Sprintf("Exp %d  To next %d", exp, next-min(exp, next)))
	} else {
		lines = append(lines, fmt.Sprintf("Exp %d", exp))
	}

	return strings.Join(lines, "\n")
}

func summaryStats(mon *golurk.Pokemon) string {
	nature := golurk.GetNature(mon)

	var b strings.Builder
	fmt.Fprintf(&b, "%-9s %5s %4s %4s", "", "Stat", "IV", "EV")
	for _, row := range statRows {
		iv := mon.Get(golurk.IV_FIELDS[row.stat])
		ev := mon.Get(golurk.EV_FIELDS[row.stat])
		fmt.Fprintf(&b, "\n%-8s%s %5d %4d %4d", row.name, natureMark(nature, row.stat), row.value(mon), iv, ev)
	}
	fmt.Fprintf(&b, "\nEV total %d/%d", golurk.GetEVTotal(mon), golurk.MAX_TOTAL_EVS)

	return b.String()
}

func summaryMoves(mon *golurk.Pokemon) string {
	bonuses := uint8(mon.Get(golurk.FIELD_PP_BONUSES))

	lines := make([]string, 0, golurk.MAX_MON_MOVES)
	for i := range uint8(golurk.MAX_MON_MOVES) {
		move := uint16(mon.Get(golurk.MOVE_FIELDS[i]))
		if move == golurk.MOVE_NONE {
			lines = append(lines, "-")
			continue
		}

		info := golurk.GlobalData.GetMove(move)
		pp := mon.Get(golurk.PP_FIELDS[i])
		lines = append(lines, fmt.Sprintf("%-16s %-8s PP %2d/%2d",
			rendering.DisplayName(info.Name), golurk.TypeName(info.Type), pp, golurk.CalculatePPWithBonus(move, bonuses, i)))
	}

	return strings.Join(lines, "\n")
}

// MonSummary renders everything the summary screen shows about mon. profile decides whether it counts as traded.
func MonSummary(mon *golurk.Pokemon, profile golurk.Profile) string {
	if mon.IsEmpty() {
		return summaryStyle.Render("Empty slot")
	}

	return summaryStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		summaryHeader(mon),
		summarySectionStyle.Render(summaryInfo(mon, profile)),
		summarySectionStyle.Render(summaryStats(mon)),
		summarySectionStyle.Render(summaryMoves(mon)),
	))
}
