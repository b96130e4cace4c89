// Package render turns generated gear assemblies into triangle meshes and
// persists or previews them: binary STL output, software rendered PNG
// previews and 2D profile plots.
package render

import "gonum.org/v1/gonum/spatial/r3"

// Triangle3 is a 3D triangle.
type Triangle3 = r3.Triangle
