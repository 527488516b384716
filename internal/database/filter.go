// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package database

import (
	"strings"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
)

// MeasurementFilter narrows palmerpenguins queries by species and/or sex.
// The zero value matches every row. Both fields are catalog values, so the
// generated SQL only ever sees known, validated inputs, and the values
// themselves are bound as parameters.
//
// Species matching is by prefix (LIKE 'Adelie%'): the raw study data stores
// the full scientific name, e.g. "Adelie Penguin (Pygoscelis adeliae)".
type MeasurementFilter struct {
	Species dataset.Species
	Sex     dataset.Sex
}

// buildConditions returns WHERE clause conditions (without the WHERE keyword)
// and their arguments. The base query carries "WHERE 1=1" to which these are
// appended.
func (f MeasurementFilter) buildConditions() (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Species != dataset.AllSpecies {
		conditions = append(conditions, "species LIKE ?")
		args = append(args, f.Species.Name()+"%")
	}
	if f.Sex != dataset.BothSexes {
		conditions = append(conditions, "sex = ?")
		args = append(args, f.Sex.Name())
	}

	if len(conditions) > 0 {
		return " AND " + strings.Join(conditions, " AND "), args
	}
	return "", args
}
