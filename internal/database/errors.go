// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package database

import "errors"

// ErrNoVariables is returned when a measurement query selects no columns.
var ErrNoVariables = errors.New("measurement query requires at least one variable")
