package industry

// MaxDepth is the recursion bound for a bill-of-materials expansion. A
// subtree deeper than this is abandoned with a logged warning, which is the
// only protection against malformed or cyclic catalogs.
const MaxDepth = 10

// MaxEfficiencyLevel is the highest material-efficiency level a recipe
// instance can carry.
const MaxEfficiencyLevel = 10

// StructureMaterialReduction is the material reduction granted by any
// qualifying structure. The rate is the same regardless of structure size.
const StructureMaterialReduction = 0.01
