package main

import (
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/boxmon/data"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/shared/partyfs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	golurk.SetInternalLogger(zerologr.New(&log.Logger))

	args := os.Args[1:]
	if len(args) < 1 {
		log.Fatal().Msg("usage: scripts check <dir> | dex | parties <dir>")
	}

	switch args[0] {
	case "check":
		if len(args) < 2 {
			log.Fatal().Msg("check needs a data directory")
		}
		checkMain(os.DirFS(args[1]))
	case "dex":
		load(data.Files)
		dexMain()
	case "parties":
		if len(args) < 2 {
			log.Fatal().Msg("parties needs a party directory")
		}
		load(data.Files)
		partiesMain(args[1])
	default:
		log.Fatal().Str("script", args[0]).Msg("unknown script")
	}
}

func load(files fs.FS) {
	if errs := golurk.DefaultLoader(files); len(errs) != 0 {
		for _, err := range errs {
			log.Err(err).Msg("data failed to load")
		}
		os.Exit(1)
	}
}

// checkMain validates an edited copy of the data directory before it gets embedded
func checkMain(files fs.FS) {
	load(files)

	species := golurk.GlobalData.SpeciesIds()
	withEvolutions := lo.Filter(species, func(s uint16, _ int) bool {
		return len(golurk.GlobalData.GetEvolutions(s)) > 0
	})
	withoutLearnset := lo.Filter(species, func(s uint16, _ int) bool {
		return len(golurk.GlobalData.GetLevelUpLearnset(s)) == 0
	})

	log.Info().
		Int("species", len(species)).
		Int("evolving_species", len(withEvolutions)).
		Int("usable_items", len(golurk.GlobalData.UsableItemIds())).
		Msg("data ok")

	for _, s := range withoutLearnset {
		log.Warn().Str("species", golurk.GetSpeciesName(s)).Msg("species has no level up learnset")
	}
}

func dexMain() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAT\tHOENN\tNAME\tTYPES\tBST")

	for _, s := range golurk.GlobalData.SpeciesIds() {
		info := golurk.GlobalData.GetSpecies(s)
		types := golurk.TypeName(info.Types[0])
		if info.Types[1] != info.Types[0] {
			types += "/" + golurk.TypeName(info.Types[1])
		}

		total := lo.SumBy(info.BaseStats[:], func(stat uint8) int { return int(stat) })
		fmt.Fprintf(w, "%03d\t%03d\t%s\t%s\t%d\n", info.NationalDex, info.HoennDex, golurk.GetSpeciesName(s), types, total)
	}

	w.Flush()
}

func partiesMain(dir string) {
	parties, err := partyfs.ListParties(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("could not list parties")
	}

	for _, saved := range parties {
		fmt.Printf("%s  %s\n", saved.Id, saved.Name)
		for i := range saved.Party.Count {
			mon := &saved.Party.Mons[i]
			fmt.Printf("    %-10s Lv. %3d  %3d/%3d HP\n", mon.Box.Nickname(), mon.Level, mon.HP, mon.MaxHP)
		}
	}
}
