// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ljmcgrath/pygoscelis/internal/config"
	"github.com/ljmcgrath/pygoscelis/internal/dataset"
)

// newTestDB opens an in-memory database seeded with the embedded sample.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

func TestNewImportsConfiguredCSV(t *testing.T) {
	csv := "species,island,sex,culmen_length_mm,culmen_depth_mm,flipper_length_mm,body_mass_g,delta_15_N_ppt,delta_13_C_ppt\n" +
		"Adelie Penguin (Pygoscelis adeliae),Torgersen,MALE,39.1,18.7,181,3750,8.94956,-24.69454\n" +
		"Gentoo penguin (Pygoscelis papua),Biscoe,FEMALE,46.1,13.2,211,4500,NA,NA\n"
	path := filepath.Join(t.TempDir(), "penguins.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := New(&config.DatabaseConfig{
		Path:        ":memory:",
		DatasetPath: path,
		MaxMemory:   "256MB",
		Threads:     1,
	})
	if err != nil {
		t.Fatalf("failed to open database with dataset CSV: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	var count int64
	if err := db.Conn().QueryRow("SELECT COUNT(*) FROM palmerpenguins").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported %d rows, want 2", count)
	}

	// NA cells come through read_csv as NULLs.
	var delta sql.NullFloat64
	err = db.Conn().QueryRow(
		"SELECT delta_15_N_ppt FROM palmerpenguins WHERE species LIKE 'Gentoo%'").Scan(&delta)
	if err != nil {
		t.Fatalf("delta query failed: %v", err)
	}
	if delta.Valid {
		t.Errorf("delta_15_N_ppt = %v, want NULL for the NA cell", delta.Float64)
	}
}

func TestNewSeedsEmbeddedSample(t *testing.T) {
	db := newTestDB(t)

	var count int64
	if err := db.Conn().QueryRow("SELECT COUNT(*) FROM palmerpenguins").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count < 50 {
		t.Errorf("seeded %d rows, want the full embedded sample", count)
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

func TestFetchMeasurements(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	records, err := db.FetchMeasurements(ctx, MeasurementFilter{}, dataset.BodyMass, dataset.FlipperLength)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(records) < 2 {
		t.Fatal("expected a header row plus observations")
	}
	if records[0][0] != "body_mass_g" || records[0][1] != "flipper_length_mm" {
		t.Errorf("header = %v", records[0])
	}
	for i, rec := range records[1:] {
		if len(rec) != 2 {
			t.Fatalf("row %d has %d cells, want 2", i+1, len(rec))
		}
		for _, cell := range rec {
			if cell == "" {
				continue // NULL measurement
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				t.Errorf("row %d: cell %q is not numeric", i+1, cell)
			}
		}
	}
}

func TestFetchMeasurementsSpeciesFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	all, err := db.FetchMeasurements(ctx, MeasurementFilter{}, dataset.BodyMass)
	if err != nil {
		t.Fatal(err)
	}
	adelie, err := db.FetchMeasurements(ctx, MeasurementFilter{Species: dataset.Adelie}, dataset.BodyMass)
	if err != nil {
		t.Fatal(err)
	}
	if len(adelie) <= 1 {
		t.Error("Adelie filter returned no observations")
	}
	if len(adelie) >= len(all) {
		t.Errorf("Adelie filter returned %d rows of %d total, expected a strict subset",
			len(adelie)-1, len(all)-1)
	}
}

func TestFetchMeasurementsSexFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	males, err := db.FetchMeasurements(ctx, MeasurementFilter{Sex: dataset.Male}, dataset.CulmenLength)
	if err != nil {
		t.Fatal(err)
	}
	females, err := db.FetchMeasurements(ctx, MeasurementFilter{Sex: dataset.Female}, dataset.CulmenLength)
	if err != nil {
		t.Fatal(err)
	}
	all, err := db.FetchMeasurements(ctx, MeasurementFilter{}, dataset.CulmenLength)
	if err != nil {
		t.Fatal(err)
	}
	// Some observations have no recorded sex, so males + females < all.
	if len(males)+len(females) >= len(all)+1 {
		t.Errorf("males (%d) + females (%d) should undercount the total (%d)",
			len(males)-1, len(females)-1, len(all)-1)
	}
}

func TestFetchMeasurementsDeduplicatesColumns(t *testing.T) {
	db := newTestDB(t)

	records, err := db.FetchMeasurements(context.Background(), MeasurementFilter{},
		dataset.BodyMass, dataset.BodyMass)
	if err != nil {
		t.Fatal(err)
	}
	if len(records[0]) != 1 {
		t.Errorf("header = %v, want the repeated column selected once", records[0])
	}
}

func TestFetchMeasurementsNoVariables(t *testing.T) {
	db := newTestDB(t)

	_, err := db.FetchMeasurements(context.Background(), MeasurementFilter{})
	if !errors.Is(err, ErrNoVariables) {
		t.Errorf("err = %v, want ErrNoVariables", err)
	}
}

func TestGetDatasetSummary(t *testing.T) {
	db := newTestDB(t)

	summary, err := db.GetDatasetSummary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalRows < 50 {
		t.Errorf("total rows = %d", summary.TotalRows)
	}

	var speciesTotal int64
	for _, sp := range summary.Species {
		if sp.Count == 0 {
			t.Errorf("species %s has no observations in the sample", sp.Species)
		}
		speciesTotal += sp.Count
	}
	if speciesTotal != summary.TotalRows {
		t.Errorf("species counts sum to %d, want %d", speciesTotal, summary.TotalRows)
	}

	if summary.Males == 0 || summary.Females == 0 {
		t.Error("expected both sexes in the sample")
	}
	if summary.Males+summary.Females > summary.TotalRows {
		t.Error("sex counts exceed the row count")
	}

	if len(summary.Variables) != len(dataset.Variables) {
		t.Errorf("summary covers %d variables, want %d", len(summary.Variables), len(dataset.Variables))
	}
	for _, v := range summary.Variables {
		if v.Present > summary.TotalRows {
			t.Errorf("%s present count %d exceeds total %d", v.Variable, v.Present, summary.TotalRows)
		}
	}
}
