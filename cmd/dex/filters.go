package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

// filterFlags binds the browse criteria to command flags.
type filterFlags struct {
	input handlers.FilterInput
	stats map[entities.Stat]*string
}

func statFlagName(stat entities.Stat) string {
	return strings.ReplaceAll(string(stat), "_", "-")
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	f.stats = make(map[entities.Stat]*string, len(entities.StatDomains))
	for _, d := range entities.StatDomains {
		f.stats[d.Stat] = flags.String(statFlagName(d.Stat), "", fmt.Sprintf("%s range, e.g. 50-100, 80- or -60 (0-%d)", d.Label, d.Max))
	}

	flags.StringVar(&f.input.Type1, "type1", "", "Primary types, comma separated")
	flags.StringVar(&f.input.Type2, "type2", "", "Secondary types, comma separated")
	flags.StringVarP(&f.input.Generations, "gen", "g", "", "Generations, comma separated (1-9)")
	flags.StringVarP(&f.input.Name, "name", "n", "", "Exact Pokémon name")
	flags.StringVarP(&f.input.Area, "area", "a", "", "Exact area name")
	flags.StringVarP(&f.input.Methods, "method", "m", "", "Encounter methods, comma separated")
	flags.StringVar(&f.input.Levels, "levels", "", "Encounter level range, e.g. 5-20 (1-100)")
	flags.StringVar(&f.input.Cap, "cap", "", "Level cap label (see 'dex caps')")
}

// criteria parses the bound flag values.
func (f *filterFlags) criteria() (services.BrowseCriteria, error) {
	in := f.input
	in.Stats = make(map[entities.Stat]string, len(f.stats))
	for stat, v := range f.stats {
		in.Stats[stat] = *v
	}
	return in.Criteria()
}
