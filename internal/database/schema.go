// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/logging"
)

// createSchema creates the palmerpenguins table. Measurement columns are
// nullable: the study has observations with missing sex and missing isotope
// values, and the query layer drops incomplete rows per chart.
func (db *DB) createSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const schema = `
	CREATE TABLE IF NOT EXISTS palmerpenguins (
		species           VARCHAR NOT NULL,
		island            VARCHAR,
		sex               VARCHAR,
		culmen_length_mm  DOUBLE,
		culmen_depth_mm   DOUBLE,
		flipper_length_mm DOUBLE,
		body_mass_g       DOUBLE,
		delta_15_N_ppt    DOUBLE,
		delta_13_C_ppt    DOUBLE
	)`

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create palmerpenguins table: %w", err)
	}
	return nil
}

// loadDataset populates the palmerpenguins table. An already-populated
// file-backed database is left alone; otherwise the configured CSV is
// imported, or the embedded sample is seeded as a fallback.
func (db *DB) loadDataset(ctx context.Context) error {
	var count int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM palmerpenguins").Scan(&count); err != nil {
		return fmt.Errorf("failed to count existing rows: %w", err)
	}
	if count > 0 {
		logging.Info().Int64("rows", count).Msg("Dataset already loaded")
		return nil
	}

	if db.cfg.DatasetPath != "" {
		return db.importCSV(ctx, db.cfg.DatasetPath)
	}
	return db.seedSample(ctx)
}

// importCSV loads a palmerpenguins CSV through DuckDB's read_csv. The file
// must carry the nine study columns; blank cells become NULLs.
func (db *DB) importCSV(ctx context.Context, path string) error {
	logging.Info().Str("path", path).Msg("Importing dataset CSV")

	const stmt = `
	INSERT INTO palmerpenguins
	SELECT species, island, sex,
	       culmen_length_mm, culmen_depth_mm, flipper_length_mm,
	       body_mass_g, delta_15_N_ppt, delta_13_C_ppt
	FROM read_csv(?, header = true, nullstr = ['', 'NA'])`

	if _, err := db.conn.ExecContext(ctx, stmt, path); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	var count int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM palmerpenguins").Scan(&count); err != nil {
		return fmt.Errorf("failed to count imported rows: %w", err)
	}
	logging.Info().Int64("rows", count).Msg("Dataset imported")
	return nil
}

// seedSample inserts the embedded sample rows in a single batch.
func (db *DB) seedSample(ctx context.Context) error {
	rows, err := dataset.SampleRows()
	if err != nil {
		return err
	}

	const insert = `
	INSERT INTO palmerpenguins (
		species, island, sex,
		culmen_length_mm, culmen_depth_mm, flipper_length_mm,
		body_mass_g, delta_15_N_ppt, delta_13_C_ppt
	) VALUES `

	values := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*9)
	for _, row := range rows {
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			row.Species, nullable(row.Island), nullable(row.Sex),
			row.CulmenLength, row.CulmenDepth, row.FlipperLength,
			row.BodyMass, row.Delta15N, row.Delta13C)
	}

	if _, err := db.conn.ExecContext(ctx, insert+strings.Join(values, ", "), args...); err != nil {
		return fmt.Errorf("failed to seed sample rows: %w", err)
	}
	logging.Info().Int("rows", len(rows)).Msg("Seeded embedded sample dataset")
	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
