package partyview

import (
	"errors"
	"fmt"

	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/rs/zerolog/log"
)

var ErrPCFull = errors.New("the PC is full")

// evolveMon turns mon into target. A nickname that is still the species name follows the evolution.
func evolveMon(mon *golurk.Pokemon, target uint16) {
	if mon.Box.Nickname() == golurk.GetSpeciesName(mon.Species()) {
		mon.SetBytes(golurk.FIELD_NICKNAME, golurk.EncodeName(golurk.GetSpeciesName(target), golurk.POKEMON_NAME_LENGTH))
	}

	mon.Set(golurk.FIELD_SPECIES, uint32(target))
	golurk.CalculateMonStats(mon)
}

// spawnShedinja puts the extra creature a Nincada style evolution leaves behind into the first free slot.
// mon must still be the pre-evolution.
func spawnShedinja(party *golurk.Party, mon golurk.Pokemon, species uint16) bool {
	if party.IsFull() {
		return false
	}

	mon.Set(golurk.FIELD_SPECIES, uint32(species))
	mon.SetBytes(golurk.FIELD_NICKNAME, golurk.EncodeName(golurk.GetSpeciesName(species), golurk.POKEMON_NAME_LENGTH))
	mon.Set(golurk.FIELD_HELD_ITEM, golurk.ITEM_NONE)
	mon.Status = golurk.STATUS1_NONE
	mon.Mail = golurk.MAIL_NONE
	// recompute as a fresh creature so it starts healthy
	mon.HP, mon.MaxHP = 0, 0
	golurk.CalculateMonStats(&mon)

	party.Mons[party.CalculateCount()] = mon
	party.CalculateCount()
	return true
}

// tryEvolve runs the level up evolution check on party slot index
func tryEvolve(party *golurk.Party, index int, clock golurk.Clock) string {
	mon := &party.Mons[index]
	name := mon.Box.Nickname()

	target := golurk.GetEvolutionTargetSpecies(mon, golurk.EVO_MODE_NORMAL, golurk.ITEM_NONE, clock, 0)
	if target == golurk.SPECIES_NONE {
		return fmt.Sprintf("%s can't evolve right now.", name)
	}

	extra := golurk.GetShedinjaEvolution(mon)
	before := *mon

	evolveMon(mon, target)
	log.Info().Uint16("species", before.Species()).Uint16("target", target).Msg("party member evolved")

	message := fmt.Sprintf("%s evolved into %s!", name, golurk.GetSpeciesName(target))
	if extra != golurk.SPECIES_NONE && spawnShedinja(party, before, extra) {
		message += fmt.Sprintf(" %s joined the party.", golurk.GetSpeciesName(extra))
	}

	return message
}

// learnLevelMoves teaches the moves of mon's new level, never replacing a known move
func learnLevelMoves(mon *golurk.Pokemon) []string {
	name := mon.Box.Nickname()
	learner := golurk.NewMoveLearner(mon)

	messages := make([]string, 0)
	for result := learner.Next(true); result != golurk.MOVE_NONE; result = learner.Next(false) {
		move := rendering.DisplayName(golurk.GlobalData.GetMove(learner.MoveToLearn()).Name)

		switch result {
		case golurk.MON_ALREADY_KNOWS_MOVE:
		case golurk.MON_HAS_MAX_MOVES:
			messages = append(messages, fmt.Sprintf("%s wants to learn %s, but already knows four moves.", name, move))
		default:
			messages = append(messages, fmt.Sprintf("%s learned %s!", name, move))
		}
	}

	return messages
}

// needsMove reports whether item works on a single move the player has to pick
func needsMove(item uint16) bool {
	effect := golurk.GlobalData.GetItem(item).Effect
	return effect != nil && (effect.HealPPOne || effect.PPUp || effect.PPMax)
}

// useItem applies item to party slot index outside of battle. Evolution stones and level ups evolve on the spot.
func useItem(party *golurk.Party, index int, item uint16, moveIndex uint8, clock golurk.Clock) []string {
	mon := &party.Mons[index]
	name := mon.Box.Nickname()
	itemName := rendering.DisplayName(golurk.GlobalData.GetItem(item).Name)
	levelBefore := mon.Level

	var evolvedFrom golurk.Pokemon
	evolved := uint16(golurk.SPECIES_NONE)

	result := golurk.UseItem(mon, item, moveIndex, golurk.ItemContext{
		Friendship: golurk.FriendshipContext{Rng: global.BoxRand},
		Clock:      clock,
		Evolve: func(evolving *golurk.Pokemon, target uint16) {
			evolvedFrom = *evolving
			evolveMon(evolving, target)
			evolved = target
		},
	})

	if result.NoEffect {
		return []string{"It won't have any effect."}
	}

	log.Debug().Str("item", itemName).Uint16("species", mon.Species()).Msg("used item")
	messages := []string{fmt.Sprintf("Used %s on %s.", itemName, name)}

	if evolved != golurk.SPECIES_NONE {
		messages = append(messages, fmt.Sprintf("%s evolved into %s!", name, golurk.GetSpeciesName(evolved)))
		log.Info().Uint16("species", evolvedFrom.Species()).Uint16("target", evolved).Msg("party member evolved by item")
	}

	if mon.Level > levelBefore {
		messages = append(messages, fmt.Sprintf("%s grew to Lv. %d!", name, mon.Level))
		messages = append(messages, learnLevelMoves(mon)...)

		if golurk.GetEvolutionTargetSpecies(mon, golurk.EVO_MODE_NORMAL, golurk.ITEM_NONE, clock, 0) != golurk.SPECIES_NONE {
			messages = append(messages, tryEvolve(party, index, clock))
		}
	}

	return messages
}

// depositMember sends party slot index to the PC and closes the gap it leaves.
// The last conscious member has to stay.
func depositMember(party *golurk.Party, pc *golurk.BoxStorage, index int) (string, error) {
	party.CalculateCount()
	if index >= int(party.Count) {
		return "", fmt.Errorf("slot %d is empty", index)
	}

	mon := &party.Mons[index]
	name := mon.Box.Nickname()

	if party.Count == 1 {
		return "", fmt.Errorf("%s is your only party member", name)
	}

	conscious := 0
	for _, member := range party.Active() {
		if member.HP > 0 {
			conscious++
		}
	}
	if conscious == 1 && mon.HP > 0 {
		return "", fmt.Errorf("%s is your last conscious party member", name)
	}

	if golurk.SendMonToPC(mon, pc) == golurk.MON_CANT_GIVE {
		return "", ErrPCFull
	}

	copy(party.Mons[index:], party.Mons[index+1:])
	party.Mons[golurk.PARTY_SIZE-1].Zero()
	party.CalculateCount()

	return fmt.Sprintf("%s was sent to box %d.", name, pc.LastBox+1), nil
}
