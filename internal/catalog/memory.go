package catalog

import (
	"context"
	"sync"

	"github.com/tvarnsen/indyplan/internal/domain"
)

// RigBonus is one in-memory rig bonus rule.
type RigBonus struct {
	RigID        domain.ItemID
	TargetGroup  domain.GroupID
	MinSecurity  float64
	MaxSecurity  float64
	BonusPercent float64
}

// MemoryStore is an in-memory Lookup. It backs tests and small bundled
// datasets that do not warrant a SQLite file.
type MemoryStore struct {
	mu         sync.RWMutex
	items      map[domain.ItemID]item
	recipes    map[domain.RecipeID]recipe
	byOutput   map[domain.ItemID]domain.RecipeID
	decryptors []domain.Decryptor
	rigBonuses []RigBonus
}

type item struct {
	name  string
	group domain.GroupID
}

type recipe struct {
	product   domain.RecipeProduct
	materials []domain.RecipeMaterial
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:    make(map[domain.ItemID]item),
		recipes:  make(map[domain.RecipeID]recipe),
		byOutput: make(map[domain.ItemID]domain.RecipeID),
	}
}

// AddItem registers an item with its display name and group.
func (m *MemoryStore) AddItem(id domain.ItemID, name string, group domain.GroupID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = item{name: name, group: group}
}

// AddRecipe registers a recipe with its product and material lines.
func (m *MemoryStore) AddRecipe(id domain.RecipeID, product domain.RecipeProduct, materials []domain.RecipeMaterial) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes[id] = recipe{product: product, materials: materials}
	if existing, ok := m.byOutput[product.OutputID]; !ok || id < existing {
		m.byOutput[product.OutputID] = id
	}
}

// AddDecryptor registers a decryptor variant.
func (m *MemoryStore) AddDecryptor(d domain.Decryptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decryptors = append(m.decryptors, d)
}

// AddRigBonus registers a rig bonus rule.
func (m *MemoryStore) AddRigBonus(b RigBonus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rigBonuses = append(m.rigBonuses, b)
}

func (m *MemoryStore) GetRecipeMaterials(_ context.Context, recipeID domain.RecipeID) ([]domain.RecipeMaterial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.RecipeMaterial, len(r.materials))
	copy(out, r.materials)
	return out, nil
}

func (m *MemoryStore) GetRecipeProduct(_ context.Context, recipeID domain.RecipeID) (*domain.RecipeProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	product := r.product
	return &product, nil
}

func (m *MemoryStore) GetRecipeForProduct(_ context.Context, itemID domain.ItemID) (domain.RecipeID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byOutput[itemID], nil
}

func (m *MemoryStore) GetItemGroup(_ context.Context, itemID domain.ItemID) (domain.GroupID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[itemID].group, nil
}

func (m *MemoryStore) GetItemName(_ context.Context, itemID domain.ItemID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[itemID].name, nil
}

func (m *MemoryStore) GetAllDecryptors(_ context.Context) ([]domain.Decryptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Decryptor, len(m.decryptors))
	copy(out, m.decryptors)
	return out, nil
}

func (m *MemoryStore) GetRigBonus(_ context.Context, rigs []domain.ItemID, targetGroup domain.GroupID, securityStatus float64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Reductions are negative percents; the strongest is the most negative.
	best := 0.0
	for _, rule := range m.rigBonuses {
		if rule.TargetGroup != targetGroup {
			continue
		}
		if securityStatus < rule.MinSecurity || securityStatus >= rule.MaxSecurity {
			continue
		}
		for _, rig := range rigs {
			if rig == rule.RigID && rule.BonusPercent < best {
				best = rule.BonusPercent
			}
		}
	}
	return best, nil
}
