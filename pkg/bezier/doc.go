// Package bezier models a Bézier curve of any degree as an ordered control
// polygon and samples it with de Casteljau's algorithm.
//
// A Curve is a plain mutable aggregate. It is not safe for concurrent use;
// the editor that owns it mutates it from a single event loop.
package bezier
