// Package noise provides composable scalar-field generation for Go.
//
// # Overview
//
// noise builds continuous float64 fields over 3D space by composing small
// computational modules into a graph: coherent-noise generators at the
// leaves, combiners and modifiers above them, and coordinate-mapping models
// that project lines, planes, cylinders, and spheres onto the field. The
// resulting fields drive terrain heightmaps, procedural textures, and
// animation parameters.
//
// # Quick Start
//
//	import "github.com/gogpu/noise"
//
//	// A gently rolling field: fractal sum of Perlin noise, rescaled.
//	src := noise.NewFractal()
//	if err := src.SetSource(0, noise.NewPerlin()); err != nil {
//	    log.Fatal(err)
//	}
//	field := noise.NewScaleBias()
//	field.SetScale(0.5)
//	if err := field.SetSource(0, src); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate the wiring once, then sample freely.
//	if err := noise.Validate(field); err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := field.GetValue(1.5, 0, -0.25)
//
// # Architecture
//
// The library is organized into:
//   - Module contract: Module interface, source slots, Validate
//   - Generators: Const, Perlin, Simplex, Fractal
//   - Combiners: Add, Min, Max, Multiply, Power, generic folds
//   - Modifiers: Abs, Invert, Clamp, ScaleBias
//   - Models: Line, Plane, Cylinder, Sphere
//   - noisemap: grid sampling and image rendering of finished fields
//
// Modules hold non-owning references to their sources; the caller owns every
// node and is responsible for keeping referenced modules alive and acyclic.
// Validate walks a finished graph and reports unbound slots or a graph deep
// enough to indicate a cycle, so wiring mistakes surface before a field is
// placed on a hot sampling path.
//
// # Thread Safety
//
// Evaluation is pure: GetValue performs a recursive descent with no hidden
// state, so any number of goroutines may sample a frozen graph concurrently.
// Binding sources with SetSource is not synchronized and must not race with
// evaluation; wire the graph first, then sample.
//
// # Numeric Policy
//
// NaN and infinity are never errors. Combiners, modifiers, and models
// propagate whatever IEEE-754 arithmetic produces; consumers that require
// finite output must validate downstream.
package noise

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
