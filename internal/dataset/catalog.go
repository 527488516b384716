// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package dataset describes the palmerpenguins study data: the measurement
// variables that can be plotted, the species and sex values that can be
// filtered on, and the display labels and colours attached to each.
//
// Every user-supplied variable, species, or sex string is resolved through
// these catalogs before it comes anywhere near a SQL statement. Column names
// are only ever taken from the Variables slice, never from request input.
package dataset

// Variable identifies a numeric measurement column of the palmerpenguins table.
type Variable string

// Measurement variables available on every chart page.
const (
	CulmenLength  Variable = "culmen_length_mm"
	CulmenDepth   Variable = "culmen_depth_mm"
	FlipperLength Variable = "flipper_length_mm"
	BodyMass      Variable = "body_mass_g"
	Delta15N      Variable = "delta_15_N_ppt"
	Delta13C      Variable = "delta_13_C_ppt"
)

// Variables lists every measurement variable in display order.
var Variables = []Variable{
	CulmenLength,
	CulmenDepth,
	FlipperLength,
	BodyMass,
	Delta15N,
	Delta13C,
}

// variableLabels maps column names to human-readable axis labels.
var variableLabels = map[Variable]string{
	CulmenLength:  "Culmen Length (mm)",
	CulmenDepth:   "Culmen Depth (mm)",
	FlipperLength: "Flipper Length (mm)",
	BodyMass:      "Body Mass (g)",
	Delta15N:      "δ15N (‰)",
	Delta13C:      "δ13C (‰)",
}

// Species identifies one of the three penguin species in the study.
type Species string

// Species filter values. The empty value means "all species".
const (
	AllSpecies Species = ""
	Adelie     Species = "adelie"
	Chinstrap  Species = "chinstrap"
	Gentoo     Species = "gentoo"
)

// SpeciesValues lists the concrete species (excluding AllSpecies).
var SpeciesValues = []Species{Adelie, Chinstrap, Gentoo}

// speciesNames maps filter values to the name stored in the species column.
// The raw study data records the full scientific name, e.g.
// "Adelie Penguin (Pygoscelis adeliae)", so matching is by prefix.
var speciesNames = map[Species]string{
	Adelie:    "Adelie",
	Chinstrap: "Chinstrap",
	Gentoo:    "Gentoo",
}

// speciesColours assigns each species its marker colour.
var speciesColours = map[Species]string{
	Adelie:    "deeppink",
	Chinstrap: "black",
	Gentoo:    "darkorange",
}

// Sex identifies a recorded penguin sex. The empty value means "both sexes".
type Sex string

// Sex filter values.
const (
	BothSexes Sex = ""
	Male      Sex = "male"
	Female    Sex = "female"
)

// SexValues lists the concrete sexes (excluding BothSexes).
var SexValues = []Sex{Male, Female}

// sexNames maps filter values to the value stored in the sex column.
var sexNames = map[Sex]string{
	Male:   "MALE",
	Female: "FEMALE",
}

// sexColours assigns each sex its marker colour, used on histograms when no
// species filter is active.
var sexColours = map[Sex]string{
	Male:   "green",
	Female: "yellow",
}

// DefaultColour is the histogram bar colour when neither a species nor a sex
// filter is active.
const DefaultColour = "cornflowerblue"

// ParseVariable resolves a request string against the variable catalog.
func ParseVariable(s string) (Variable, bool) {
	for _, v := range Variables {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// ParseSpecies resolves a request string against the species catalog.
// The empty string resolves to AllSpecies.
func ParseSpecies(s string) (Species, bool) {
	if s == "" {
		return AllSpecies, true
	}
	for _, sp := range SpeciesValues {
		if string(sp) == s {
			return sp, true
		}
	}
	return "", false
}

// ParseSex resolves a request string against the sex catalog.
// The empty string resolves to BothSexes.
func ParseSex(s string) (Sex, bool) {
	if s == "" {
		return BothSexes, true
	}
	for _, sx := range SexValues {
		if string(sx) == s {
			return sx, true
		}
	}
	return "", false
}

// Label returns the display label for a variable.
func (v Variable) Label() string {
	return variableLabels[v]
}

// Column returns the SQL column name for a variable. Only catalog values
// reach this point, so the result is safe to interpolate into a SELECT list.
func (v Variable) Column() string {
	return string(v)
}

// Name returns the species name as stored in the species column (prefix).
func (s Species) Name() string {
	return speciesNames[s]
}

// Colour returns the marker colour for a species, or "" for AllSpecies.
func (s Species) Colour() string {
	return speciesColours[s]
}

// DisplayName returns the species name for titles. AllSpecies renders as the
// full enumeration, matching the histogram title of the original dashboard.
func (s Species) DisplayName() string {
	if s == AllSpecies {
		return "Adelie, Chinstrap, and Gentoo"
	}
	return speciesNames[s]
}

// Name returns the sex value as stored in the sex column.
func (s Sex) Name() string {
	return sexNames[s]
}

// Colour returns the marker colour for a sex, or "" for BothSexes.
func (s Sex) Colour() string {
	return sexColours[s]
}

// DisplayName returns the sex for titles, with a leading space so that
// "amongst{sex} {species} Penguins" reads naturally in both cases.
func (s Sex) DisplayName() string {
	switch s {
	case Male:
		return " Male"
	case Female:
		return " Female"
	default:
		return ""
	}
}

// HistogramColour picks the bar colour for a species/sex filter combination:
// species wins over sex, sex over the default.
func HistogramColour(species Species, sex Sex) string {
	if species != AllSpecies {
		return species.Colour()
	}
	if sex != BothSexes {
		return sex.Colour()
	}
	return DefaultColour
}
