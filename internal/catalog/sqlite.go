package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tvarnsen/indyplan/internal/domain"
)

// SQLiteStore implements Lookup over the reference dataset shipped as a
// SQLite file. The dataset is opened read-only; the store is safe for
// concurrent reads.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the reference dataset at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=query_only(true)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog dataset: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog dataset: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreFromDB wraps an existing connection. Used by tests that seed
// an in-memory dataset.
func NewSQLiteStoreFromDB(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the dataset is reachable. Used by the readiness handler.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) GetRecipeMaterials(ctx context.Context, recipeID domain.RecipeID) ([]domain.RecipeMaterial, error) {
	var rows []struct {
		MaterialID   int32 `db:"material_id"`
		BaseQuantity int64 `db:"quantity"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT material_id, quantity FROM recipe_materials WHERE recipe_id = ? ORDER BY material_id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe materials: %w", err)
	}
	materials := make([]domain.RecipeMaterial, 0, len(rows))
	for _, r := range rows {
		materials = append(materials, domain.RecipeMaterial{
			MaterialID:   domain.ItemID(r.MaterialID),
			BaseQuantity: r.BaseQuantity,
		})
	}
	return materials, nil
}

func (s *SQLiteStore) GetRecipeProduct(ctx context.Context, recipeID domain.RecipeID) (*domain.RecipeProduct, error) {
	var row struct {
		OutputID       int32 `db:"output_id"`
		OutputQuantity int64 `db:"output_quantity"`
	}
	err := s.db.GetContext(ctx, &row,
		`SELECT output_id, output_quantity FROM recipes WHERE recipe_id = ?`, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe product: %w", err)
	}
	return &domain.RecipeProduct{
		OutputID:       domain.ItemID(row.OutputID),
		OutputQuantity: row.OutputQuantity,
	}, nil
}

func (s *SQLiteStore) GetRecipeForProduct(ctx context.Context, itemID domain.ItemID) (domain.RecipeID, error) {
	var recipeID int32
	err := s.db.GetContext(ctx, &recipeID,
		`SELECT recipe_id FROM recipes WHERE output_id = ? ORDER BY recipe_id LIMIT 1`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query producing recipe: %w", err)
	}
	return domain.RecipeID(recipeID), nil
}

func (s *SQLiteStore) GetItemGroup(ctx context.Context, itemID domain.ItemID) (domain.GroupID, error) {
	var groupID int32
	err := s.db.GetContext(ctx, &groupID,
		`SELECT group_id FROM items WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query item group: %w", err)
	}
	return domain.GroupID(groupID), nil
}

func (s *SQLiteStore) GetItemName(ctx context.Context, itemID domain.ItemID) (string, error) {
	var name string
	err := s.db.GetContext(ctx, &name,
		`SELECT name FROM items WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query item name: %w", err)
	}
	return name, nil
}

func (s *SQLiteStore) GetAllDecryptors(ctx context.Context) ([]domain.Decryptor, error) {
	var rows []struct {
		ItemID                int32   `db:"item_id"`
		Name                  string  `db:"name"`
		ProbabilityMultiplier float64 `db:"probability_multiplier"`
		EfficiencyModifier    float64 `db:"efficiency_modifier"`
		SpeedModifier         float64 `db:"speed_modifier"`
		OutputCountModifier   int64   `db:"output_count_modifier"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT d.item_id, i.name, d.probability_multiplier, d.efficiency_modifier,
		       d.speed_modifier, d.output_count_modifier
		FROM decryptors d
		JOIN items i ON i.item_id = d.item_id
		ORDER BY d.item_id`)
	if err != nil {
		return nil, fmt.Errorf("query decryptors: %w", err)
	}
	decryptors := make([]domain.Decryptor, 0, len(rows))
	for _, r := range rows {
		decryptors = append(decryptors, domain.Decryptor{
			ID:                    domain.ItemID(r.ItemID),
			Name:                  r.Name,
			ProbabilityMultiplier: r.ProbabilityMultiplier,
			EfficiencyModifier:    r.EfficiencyModifier,
			SpeedModifier:         r.SpeedModifier,
			OutputCountModifier:   r.OutputCountModifier,
		})
	}
	return decryptors, nil
}

// GetRigBonus returns the strongest bonus among the mounted rigs whose
// configured target group matches and whose security band contains the
// facility's security status.
func (s *SQLiteStore) GetRigBonus(ctx context.Context, rigs []domain.ItemID, targetGroup domain.GroupID, securityStatus float64) (float64, error) {
	if len(rigs) == 0 {
		return 0, nil
	}
	// Material rig bonuses are reductions, so the strongest is the most
	// negative percent.
	query, args, err := sqlx.In(`
		SELECT COALESCE(MIN(bonus_percent), 0)
		FROM rig_bonuses
		WHERE rig_id IN (?) AND target_group_id = ?
		  AND min_security <= ? AND ? < max_security`,
		rigs, targetGroup, securityStatus, securityStatus)
	if err != nil {
		return 0, fmt.Errorf("build rig bonus query: %w", err)
	}
	var bonus float64
	if err := s.db.GetContext(ctx, &bonus, s.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("query rig bonus: %w", err)
	}
	return bonus, nil
}
