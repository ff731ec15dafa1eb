// Command seed creates a catalog database and loads it with a small starter
// dataset so the planner can run without a full static data export.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tvarnsen/indyplan/internal/catalog"
)

func main() {
	dbPath := flag.String("db", "data/catalog.sqlite", "path of the catalog database to create")
	flag.Parse()

	if err := run(*dbPath); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog seeded", "path", *dbPath)
}

func run(dbPath string) error {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(catalog.Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range seedStatements {
		if _, err := tx.Exec(stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("failed to seed %q: %w", stmt.query, err)
		}
	}

	return tx.Commit()
}

type statement struct {
	query string
	args  []any
}

// A minimal mineral/component/hull chain plus decryptors and one rig bonus,
// enough to exercise recursive expansion and invention end to end.
var seedStatements = []statement{
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34, "Tritanium", 18}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{35, "Pyerite", 18}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{11399, "Morphite", 18}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{16670, "Crystalline Carbonide", 334}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{12345, "Light Frigate Hull", 25}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{20410, "Datacore - High Energy Physics", 333}},

	{"INSERT INTO recipes (recipe_id, output_id, output_quantity) VALUES (?, ?, ?)", []any{100, 16670, 1}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{100, 34, 3200}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{100, 35, 860}},

	{"INSERT INTO recipes (recipe_id, output_id, output_quantity) VALUES (?, ?, ?)", []any{200, 12345, 1}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{200, 16670, 120}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{200, 34, 18000}},

	// Invention recipe: datacores in, hull recipe copies out.
	{"INSERT INTO recipes (recipe_id, output_id, output_quantity) VALUES (?, ?, ?)", []any{300, 12345, 10}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{300, 20410, 2}},
	{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{300, 11399, 1}},

	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34201, "Accelerant Decryptor", 1304}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34202, "Attainment Decryptor", 1304}},
	{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34203, "Augmentation Decryptor", 1304}},
	{"INSERT INTO decryptors (item_id, probability_multiplier, efficiency_modifier, speed_modifier, output_count_modifier) VALUES (?, ?, ?, ?, ?)",
		[]any{34201, 1.2, 0.02, 0.1, 1}},
	{"INSERT INTO decryptors (item_id, probability_multiplier, efficiency_modifier, speed_modifier, output_count_modifier) VALUES (?, ?, ?, ?, ?)",
		[]any{34202, 1.8, -0.01, 0.25, 4}},
	{"INSERT INTO decryptors (item_id, probability_multiplier, efficiency_modifier, speed_modifier, output_count_modifier) VALUES (?, ?, ?, ?, ?)",
		[]any{34203, 0.6, -0.02, 0.02, 9}},

	{"INSERT INTO rig_bonuses (rig_id, target_group_id, bonus_percent, min_security, max_security) VALUES (?, ?, ?, ?, ?)",
		[]any{43920, 25, -2.0, -1.0, 0.45}},
}
