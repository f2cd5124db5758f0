package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

// FilterInput holds browse criteria as a user types them: ranges as "LO-HI",
// lists comma separated. Blank fields leave their dimension unconstrained.
type FilterInput struct {
	Stats       map[entities.Stat]string
	Type1       string
	Type2       string
	Generations string
	Name        string
	Area        string
	Methods     string
	Levels      string
	Cap         string
}

// Criteria parses the input. Malformed values return a *entities.FilterInputError.
func (in FilterInput) Criteria() (services.BrowseCriteria, error) {
	var c services.BrowseCriteria

	for _, d := range entities.StatDomains {
		raw := strings.TrimSpace(in.Stats[d.Stat])
		if raw == "" {
			continue
		}
		r, err := ParseRange(string(d.Stat), raw, 0, d.Max)
		if err != nil {
			return services.BrowseCriteria{}, err
		}
		if c.Pokemon.Stats == nil {
			c.Pokemon.Stats = make(map[entities.Stat]services.Range)
		}
		c.Pokemon.Stats[d.Stat] = r
	}

	gens, err := parseInts("generation", in.Generations)
	if err != nil {
		return services.BrowseCriteria{}, err
	}

	c.Pokemon.Type1 = SplitList(in.Type1)
	c.Pokemon.Type2 = SplitList(in.Type2)
	c.Pokemon.Generations = gens
	c.Pokemon.Name = strings.TrimSpace(in.Name)

	c.Locations.Area = strings.TrimSpace(in.Area)
	c.Locations.Methods = SplitList(in.Methods)
	c.Locations.Cap = strings.TrimSpace(in.Cap)
	if raw := strings.TrimSpace(in.Levels); raw != "" {
		r, err := ParseRange("levels", raw, entities.MinLevel, entities.MaxLevel)
		if err != nil {
			return services.BrowseCriteria{}, err
		}
		c.Locations.Levels = &r
	}

	return c, nil
}

// ParseRange reads "LO-HI", "LO-", "-HI" or a single value. Open ends take
// min or max. Bounds are returned as given; validation happens in the service.
func ParseRange(field, s string, min, max int) (services.Range, error) {
	s = strings.TrimSpace(s)
	bad := &entities.FilterInputError{Field: field, Reason: fmt.Sprintf("%q is not a range (want LO-HI)", s)}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		n, err := strconv.Atoi(s)
		if err != nil {
			return services.Range{}, bad
		}
		return services.Range{Lo: n, Hi: n}, nil
	}

	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if lo == "" && hi == "" {
		return services.Range{}, bad
	}

	r := services.Range{Lo: min, Hi: max}
	var err error
	if lo != "" {
		if r.Lo, err = strconv.Atoi(lo); err != nil {
			return services.Range{}, bad
		}
	}
	if hi != "" {
		if r.Hi, err = strconv.Atoi(hi); err != nil {
			return services.Range{}, bad
		}
	}
	return r, nil
}

// SplitList splits a comma separated list, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseInts(field, s string) ([]int, error) {
	var out []int
	for _, item := range SplitList(s) {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, &entities.FilterInputError{Field: field, Reason: fmt.Sprintf("%q is not a number", item)}
		}
		out = append(out, n)
	}
	return out, nil
}
