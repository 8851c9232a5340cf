// Package manifest handles the two manifest features of findpath.
//
// A search manifest (-m) widens the search before it starts. Files ending in
// .yaml or .yml are read as a list of extra directories and extensions:
//
//	directories:
//	  - ./bin
//	  - C:\tools
//	extensions: [".exe", ".cmd"]
//
// Relative directories are resolved against the manifest's own directory.
// Any other file is treated as a Windows application manifest and activated
// as an activation context for the duration of the search, so dependent
// assemblies it names become visible to SearchPathW. Activation is a no-op
// on platforms without activation contexts.
//
// Extraction (-xm) reads the first RT_MANIFEST resource from a PE image and
// writes it next to the caller as <base>.manifest.
package manifest
