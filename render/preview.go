package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Scale down images relative to Full HD resolution.
	previewFHDScaler            = 0.4
	previewWidth, previewHeight = int(1920. * previewFHDScaler), int(1080. * previewFHDScaler)
)

// ViewConfig positions the preview camera.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view fit for a whole gear assembly.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Z: 1},
		Eyepos: r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
		Near:   1,
		Far:    10,
	}
}

// PreviewPNG software-renders an STL file to a shaded PNG image.
func PreviewPNG(stlName, outputname string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		scale = 2  // supersampling factor
		fovy  = 30 // vertical field of view in degrees
	)

	var (
		far    = view.Far
		near   = view.Near
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z) // camera position
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(previewWidth*scale, previewHeight*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(previewWidth) / float64(previewHeight)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(previewWidth), uint(previewHeight), image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
