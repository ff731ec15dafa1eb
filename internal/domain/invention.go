package domain

// Decryptor is a consumable catalyst that alters invention success
// probability and output run count. Read-only catalog entries.
type Decryptor struct {
	ID                    ItemID  `json:"item_id"`
	Name                  string  `json:"name"`
	ProbabilityMultiplier float64 `json:"probability_multiplier"`
	EfficiencyModifier    float64 `json:"efficiency_modifier"`
	SpeedModifier         float64 `json:"speed_modifier"`
	OutputCountModifier   int64   `json:"output_count_modifier"`
}

// SkillRequirement names a skill a character must have to run an invention
// job.
type SkillRequirement struct {
	SkillID ItemID `json:"skill_id"`
	Level   int    `json:"level"`
}

// Skills holds the skill levels that feed the invention probability formula.
// Levels default to 0 when unspecified.
type Skills struct {
	EncryptionLevel int `json:"encryption_level"`
	DatacoreLevel1  int `json:"datacore_level_1"`
	DatacoreLevel2  int `json:"datacore_level_2"`
}

// InventionJob describes one invention attempt to evaluate.
type InventionJob struct {
	BaseProbability  float64            `json:"base_probability"`
	Materials        []RecipeMaterial   `json:"materials"`
	CandidateOutputs []RecipeProduct    `json:"candidate_outputs"`
	RequiredSkills   []SkillRequirement `json:"required_skills,omitempty"`
}

// BaseOutputRuns returns the run count of the job's first candidate output,
// 0 when the job has none.
func (j InventionJob) BaseOutputRuns() int64 {
	if len(j.CandidateOutputs) == 0 {
		return 0
	}
	return j.CandidateOutputs[0].OutputQuantity
}

// InventionOutcome is the evaluated economics of one invention option.
// Decryptor is nil for the no-catalyst baseline.
type InventionOutcome struct {
	Decryptor         *Decryptor `json:"decryptor,omitempty"`
	Probability       float64    `json:"probability"`
	MaterialCost      float64    `json:"material_cost"`
	CatalystCost      float64    `json:"catalyst_cost"`
	JobCost           float64    `json:"job_cost"`
	CostPerSuccess    float64    `json:"cost_per_success"`
	OutputRunsPerUnit int64      `json:"output_runs_per_unit"`
	CostPerOutputUnit float64    `json:"cost_per_output_unit"`
}
