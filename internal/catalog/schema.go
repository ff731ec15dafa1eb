package catalog

// Schema is the reference dataset layout. The dataset ships prebuilt with
// the application; the schema lives here so the seed tool and tests can
// construct one from scratch.
const Schema = `
CREATE TABLE IF NOT EXISTS items (
	item_id  INTEGER PRIMARY KEY,
	name     TEXT NOT NULL DEFAULT '',
	group_id INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recipes (
	recipe_id       INTEGER PRIMARY KEY,
	output_id       INTEGER NOT NULL,
	output_quantity INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_recipes_output ON recipes (output_id);

CREATE TABLE IF NOT EXISTS recipe_materials (
	recipe_id   INTEGER NOT NULL,
	material_id INTEGER NOT NULL,
	quantity    INTEGER NOT NULL,
	PRIMARY KEY (recipe_id, material_id)
);

CREATE TABLE IF NOT EXISTS decryptors (
	item_id                INTEGER PRIMARY KEY,
	probability_multiplier REAL NOT NULL DEFAULT 1.0,
	efficiency_modifier    REAL NOT NULL DEFAULT 0,
	speed_modifier         REAL NOT NULL DEFAULT 0,
	output_count_modifier  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rig_bonuses (
	rig_id          INTEGER NOT NULL,
	target_group_id INTEGER NOT NULL,
	min_security    REAL NOT NULL DEFAULT -10.0,
	max_security    REAL NOT NULL DEFAULT 10.0,
	bonus_percent   REAL NOT NULL,
	PRIMARY KEY (rig_id, target_group_id, min_security)
);
`
