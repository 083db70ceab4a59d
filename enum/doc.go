// Package enum provides closed, ordered sets of named constant values.
//
// An enum-like type is a static namespace of values, never an instantiable
// object. Each vocabulary declares its variants once, as a package-level
// Set, and gets ordered enumeration and membership testing without
// reimplementing the introspection logic:
//
//	type Color string
//
//	const (
//	    ColorRed   Color = "red"
//	    ColorGreen Color = "green"
//	)
//
//	var Colors = enum.Declare("color",
//	    enum.V("RED", ColorRed),
//	    enum.V("GREEN", ColorGreen),
//	)
//
//	Colors.Values()         // ordered RED→red, GREEN→green
//	Colors.IsValue("red")   // true
//	Colors.IsValue("blue")  // false
//
// # No Instances
//
// Sets exist only at the package level. The two object-lifecycle
// operations, New and Clone, fail unconditionally with an
// InvalidOperationError; there is no successful path. Declare is
// definition, not instantiation — it runs once, at package load, and the
// resulting set is immutable for the life of the process.
//
// # Catalog
//
// Vocabulary packages register their declared sets in init() via
// MustRegister. The catalog is a read-only index over already-declared
// sets; it never adds variants to any of them. The enumkit CLI uses it to
// list and inspect vocabularies by name.
//
// # Concurrency
//
// Sets are immutable after Declare, so every query is safe for concurrent
// use with no coordination. The catalog guards its index with a lock;
// registration normally happens in init() before any lookups.
package enum
