// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinConnectedNodes is the smallest size every connected constructor accepts.
// A single isolated vertex is connected.
const MinConnectedNodes = 1

// MinCycleNodes is the smallest simple cycle.
const MinCycleNodes = 3

// MinWheelNodes is the smallest wheel: a triangle ring plus its hub.
const MinWheelNodes = 4

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in RandomConnected, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomConnected, inclusive.
const MaxProbability = 1.0

// ProbabilityResolution is the number of equally likely outcomes per extra
// edge trial; p is rounded to a multiple of 1/ProbabilityResolution.
const ProbabilityResolution = 1000
