// Package cows supplies raw figure templates by name.
//
// Three sources exist, tried in a fixed order by a Resolver:
//
//   - a file path: any name containing ".cow" is read straight from disk
//     with LoadFile and never consulted against a store
//   - the embedded store compiled into the binary (Embedded)
//   - directories of user figures (DirStore), typically COWPATH and
//     $XDG_DATA_HOME/cowsay/cows
//
// Stores are read-only. Names are file names without the .cow extension.
package cows
