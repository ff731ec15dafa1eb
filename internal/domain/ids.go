package domain

// ItemID identifies an item type in the static reference dataset.
type ItemID int32

// RecipeID identifies a blueprint/recipe in the static reference dataset.
type RecipeID int32

// GroupID identifies an item classification group.
type GroupID int32

// LocationID identifies a solar system or structure location.
type LocationID int64
