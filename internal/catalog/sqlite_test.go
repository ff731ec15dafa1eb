package catalog

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/tvarnsen/indyplan/internal/domain"
)

func seededSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(Schema)
	require.NoError(t, err)

	seed := []struct {
		query string
		args  []any
	}{
		{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34, "Tritanium", 18}},
		{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{900, "Hull", 25}},
		{"INSERT INTO items (item_id, name, group_id) VALUES (?, ?, ?)", []any{34201, "Accelerant Decryptor", 1304}},
		{"INSERT INTO recipes (recipe_id, output_id, output_quantity) VALUES (?, ?, ?)", []any{1, 900, 1}},
		{"INSERT INTO recipe_materials (recipe_id, material_id, quantity) VALUES (?, ?, ?)", []any{1, 34, 800}},
		{"INSERT INTO decryptors (item_id, probability_multiplier, efficiency_modifier, speed_modifier, output_count_modifier) VALUES (?, ?, ?, ?, ?)",
			[]any{34201, 1.2, 0.02, 0.1, 1}},
		{"INSERT INTO rig_bonuses (rig_id, target_group_id, bonus_percent, min_security, max_security) VALUES (?, ?, ?, ?, ?)",
			[]any{43920, 25, -2.0, -1.0, 0.45}},
		{"INSERT INTO rig_bonuses (rig_id, target_group_id, bonus_percent, min_security, max_security) VALUES (?, ?, ?, ?, ?)",
			[]any{43921, 25, -4.2, -1.0, 0.45}},
	}
	for _, s := range seed {
		_, err := db.Exec(s.query, s.args...)
		require.NoError(t, err)
	}

	return NewSQLiteStoreFromDB(db)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store := seededSQLiteStore(t)

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("GetRecipeMaterials", func(t *testing.T) {
		materials, err := store.GetRecipeMaterials(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.RecipeMaterial{{MaterialID: 34, BaseQuantity: 800}}, materials)
	})

	t.Run("GetRecipeMaterials: unknown recipe is empty", func(t *testing.T) {
		materials, err := store.GetRecipeMaterials(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, materials)
	})

	t.Run("GetRecipeProduct", func(t *testing.T) {
		product, err := store.GetRecipeProduct(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, domain.ItemID(900), product.OutputID)
		assert.Equal(t, int64(1), product.OutputQuantity)
	})

	t.Run("GetRecipeProduct: unknown recipe is nil", func(t *testing.T) {
		product, err := store.GetRecipeProduct(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetRecipeForProduct", func(t *testing.T) {
		recipeID, err := store.GetRecipeForProduct(ctx, 900)
		require.NoError(t, err)
		assert.Equal(t, domain.RecipeID(1), recipeID)

		recipeID, err = store.GetRecipeForProduct(ctx, 34)
		require.NoError(t, err)
		assert.Equal(t, domain.RecipeID(0), recipeID, "raw material has no producer")
	})

	t.Run("GetItemGroup and GetItemName", func(t *testing.T) {
		group, err := store.GetItemGroup(ctx, 900)
		require.NoError(t, err)
		assert.Equal(t, domain.GroupID(25), group)

		name, err := store.GetItemName(ctx, 34)
		require.NoError(t, err)
		assert.Equal(t, "Tritanium", name)

		name, err = store.GetItemName(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, name)
	})

	t.Run("GetAllDecryptors joins display names", func(t *testing.T) {
		decryptors, err := store.GetAllDecryptors(ctx)
		require.NoError(t, err)
		require.Len(t, decryptors, 1)
		assert.Equal(t, "Accelerant Decryptor", decryptors[0].Name)
		assert.Equal(t, 1.2, decryptors[0].ProbabilityMultiplier)
		assert.Equal(t, int64(1), decryptors[0].OutputCountModifier)
	})

	t.Run("GetRigBonus picks the strongest mounted reduction", func(t *testing.T) {
		bonus, err := store.GetRigBonus(ctx, []domain.ItemID{43920, 43921}, 25, 0.3)
		require.NoError(t, err)
		assert.Equal(t, -4.2, bonus)
	})

	t.Run("GetRigBonus respects the security band", func(t *testing.T) {
		bonus, err := store.GetRigBonus(ctx, []domain.ItemID{43920}, 25, 0.9)
		require.NoError(t, err)
		assert.Equal(t, 0.0, bonus)
	})

	t.Run("GetRigBonus with no rigs or wrong group is zero", func(t *testing.T) {
		bonus, err := store.GetRigBonus(ctx, nil, 25, 0.3)
		require.NoError(t, err)
		assert.Equal(t, 0.0, bonus)

		bonus, err = store.GetRigBonus(ctx, []domain.ItemID{43920}, 99, 0.3)
		require.NoError(t, err)
		assert.Equal(t, 0.0, bonus)
	})
}
