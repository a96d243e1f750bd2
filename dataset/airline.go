package dataset

import "strings"

// AirlineID is the closed set of airlines the dashboard knows about.
type AirlineID int

const (
	IndiGo AirlineID = iota
	AirIndia
	SpiceJet
	AkasaAir
)

type airlineInfo struct {
	name string
	slug string
}

// airlineTable is the single source of names and slugs. Slugs are spelled
// out here rather than derived from names.
var airlineTable = map[AirlineID]airlineInfo{
	IndiGo:   {name: "IndiGo", slug: "indigo"},
	AirIndia: {name: "Air India", slug: "air-india"},
	SpiceJet: {name: "SpiceJet", slug: "spicejet"},
	AkasaAir: {name: "Akasa Air", slug: "akasa"},
}

// AllAirlines returns every airline in display order.
func AllAirlines() []AirlineID {
	return []AirlineID{IndiGo, AirIndia, SpiceJet, AkasaAir}
}

func (id AirlineID) Valid() bool {
	_, ok := airlineTable[id]
	return ok
}

// Name is the display name, which is also the dataset key.
func (id AirlineID) Name() string {
	if info, ok := airlineTable[id]; ok {
		return info.name
	}
	return ""
}

// Slug is the stable short key used for metric cards, config files and
// export sheet names.
func (id AirlineID) Slug() string {
	if info, ok := airlineTable[id]; ok {
		return info.slug
	}
	return ""
}

func (id AirlineID) String() string {
	if n := id.Name(); n != "" {
		return n
	}
	return "unknown"
}

// Lookup resolves a display name or a slug. Matching ignores case and
// surrounding spaces.
func Lookup(s string) (AirlineID, bool) {
	s = strings.TrimSpace(s)
	for _, id := range AllAirlines() {
		info := airlineTable[id]
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.slug) {
			return id, true
		}
	}
	return 0, false
}

// ParseAirlines maps names to IDs, keeping the given order. Unknown names
// and duplicates are dropped.
func ParseAirlines(names []string) []AirlineID {
	out := make([]AirlineID, 0, len(names))
	seen := make(map[AirlineID]bool, len(names))
	for _, n := range names {
		id, ok := Lookup(n)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Names is the inverse of ParseAirlines.
func Names(ids []AirlineID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.Valid() {
			out = append(out, id.Name())
		}
	}
	return out
}
