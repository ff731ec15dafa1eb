package domain

// Facility describes the production location whose structure and rigs apply
// multiplicative bonuses to material consumption. A nil *Facility means no
// facility context and therefore no bonuses.
type Facility struct {
	StructureTypeID ItemID     `json:"structure_type_id,omitempty"`
	Rigs            []ItemID   `json:"rigs,omitempty"`
	SecurityStatus  float64    `json:"security_status,omitempty"`
	SystemID        LocationID `json:"system_id,omitempty"`
}

// HasStructureBonus reports whether a structure material reduction applies.
func (f *Facility) HasStructureBonus() bool {
	return f != nil && f.StructureTypeID != 0
}

// HasRigs reports whether any rig is mounted.
func (f *Facility) HasRigs() bool {
	return f != nil && len(f.Rigs) > 0
}
