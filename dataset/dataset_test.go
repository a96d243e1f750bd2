package dataset

import (
	"errors"
	"testing"
)

func TestDefaultIsAligned(t *testing.T) {
	ds := Default()
	if err := ds.Validate(); err != nil {
		t.Fatalf("default dataset invalid: %v", err)
	}
	for _, id := range ds.IDs() {
		s, _ := ds.Series(id)
		if len(s.Revenue) != len(ds.Years) || len(s.Profit) != len(ds.Years) {
			t.Fatalf("%s not aligned to %d years", id, len(ds.Years))
		}
	}
	if got := len(ds.HistoricalYears) + len(ds.ProjectedYears); got != len(ds.Years) {
		t.Fatalf("historical+projected = %d, want %d", got, len(ds.Years))
	}
}

func TestValidateMisaligned(t *testing.T) {
	ds := Default()
	s := ds.Data[SpiceJet]
	s.Profit = s.Profit[:len(s.Profit)-1]
	ds.Data[SpiceJet] = s

	err := ds.Validate()
	if !errors.Is(err, ErrMisaligned) {
		t.Fatalf("expected ErrMisaligned, got %v", err)
	}
}

func TestValidateUnknownAirline(t *testing.T) {
	ds := Default()
	ds.Airlines = append(ds.Airlines, "Jet Airways")
	if err := ds.Validate(); !errors.Is(err, ErrUnknownAirline) {
		t.Fatalf("expected ErrUnknownAirline, got %v", err)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Data[IndiGo].Revenue[0] = -1
	a.Years[0] = "FY1999"

	b := Default()
	if b.Data[IndiGo].Revenue[0] != 35000 || b.Years[0] != "FY2020" {
		t.Fatalf("Default shares state between callers")
	}
}

func TestSlugTable(t *testing.T) {
	cases := []struct {
		id   AirlineID
		name string
		slug string
	}{
		{IndiGo, "IndiGo", "indigo"},
		{AirIndia, "Air India", "air-india"},
		{SpiceJet, "SpiceJet", "spicejet"},
		{AkasaAir, "Akasa Air", "akasa"},
	}
	for _, tc := range cases {
		if tc.id.Name() != tc.name || tc.id.Slug() != tc.slug {
			t.Fatalf("%d: got (%q, %q), want (%q, %q)", tc.id, tc.id.Name(), tc.id.Slug(), tc.name, tc.slug)
		}
		for _, in := range []string{tc.name, tc.slug} {
			got, ok := Lookup(in)
			if !ok || got != tc.id {
				t.Fatalf("Lookup(%q) = %v, %v", in, got, ok)
			}
		}
	}
	if _, ok := Lookup("akasa-air"); ok {
		t.Fatalf("akasa-air must not resolve; the slug is akasa")
	}
}

func TestParseAirlinesKeepsOrderAndDropsUnknown(t *testing.T) {
	got := ParseAirlines([]string{"SpiceJet", "Vistara", "indigo", "SpiceJet", " Akasa Air "})
	want := []AirlineID{SpiceJet, IndiGo, AkasaAir}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOperational(t *testing.T) {
	ds := Default()
	akasa := ds.Data[AkasaAir]
	if akasa.OperationalFrom() != ds.IndexOf("FY2023") {
		t.Fatalf("Akasa operational from %d", akasa.OperationalFrom())
	}
	if akasa.Operational(ds.IndexOf("FY2022")) {
		t.Fatalf("Akasa should not be operational in FY2022")
	}
	if !ds.Data[IndiGo].Operational(0) {
		t.Fatalf("IndiGo should be operational from the first year")
	}
}

func TestValueAndPrevious(t *testing.T) {
	ds := Default()
	v, err := ds.Value(IndiGo, Revenue, "FY2025")
	if err != nil || v != 84098 {
		t.Fatalf("Value = %v, %v", v, err)
	}
	if _, err := ds.Value(IndiGo, Revenue, "FY2031"); !errors.Is(err, ErrUnknownYear) {
		t.Fatalf("expected ErrUnknownYear, got %v", err)
	}
	if ds.Previous("FY2025") != "FY2024" || ds.Previous("FY2020") != "" {
		t.Fatalf("Previous wrong")
	}
	if ds.LastHistorical() != "FY2025" {
		t.Fatalf("LastHistorical = %s", ds.LastHistorical())
	}
}
