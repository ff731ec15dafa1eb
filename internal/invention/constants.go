package invention

// Divisors of the skill terms in the invention probability formula. The
// multiplicative structure is load-bearing: it decides which decryptor the
// optimizer picks.
const (
	encryptionSkillDivisor = 40.0
	datacoreSkillDivisor   = 30.0
)

// JobCostRate approximates the facility job cost as a fixed fraction of
// material cost. Deliberately a linear approximation of the true
// cost-index formula; downstream comparisons assume this constant.
const JobCostRate = 0.015
