// Command geargen generates the 3D geometry of a planetary gear set and
// writes one binary STL per gear plus the combined assembly.
//
// Example:
//
//	geargen -sun 12 -planet 18 -planets 3 -module 1 -thickness 5 -out gears
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kame404/planetary-gear-generator/planetary"
	"github.com/kame404/planetary-gear-generator/render"
	"github.com/kame404/planetary-gear-generator/sdfx"
)

func main() {
	var (
		p       planetary.Params
		outDir  string
		preview string
		plot    string
		mcCells int
	)
	flag.IntVar(&p.SunTeeth, "sun", 32, "sun gear tooth count")
	flag.IntVar(&p.PlanetTeeth, "planet", 16, "planet gear tooth count")
	flag.IntVar(&p.PlanetCount, "planets", 6, "number of planet gears")
	flag.Float64Var(&p.Module, "module", 1, "gear module (pitch diameter per tooth)")
	flag.Float64Var(&p.PressureAngleDeg, "pressure-angle", 20, "pressure angle in degrees")
	flag.Float64Var(&p.Clearance, "clearance", 0, "radial meshing clearance")
	flag.Float64Var(&p.Thickness, "thickness", 5, "gear thickness (extrusion height)")
	flag.Float64Var(&p.RingMargin, "ring-margin", 4, "ring gear radial stock, in module multiples")
	flag.StringVar(&outDir, "out", ".", "output directory for STL files")
	flag.StringVar(&preview, "preview", "", "also render a PNG preview of the assembly to this file")
	flag.StringVar(&plot, "plot", "", "also plot the sun gear profile to this file (.png/.svg/.pdf)")
	flag.IntVar(&mcCells, "marching-cubes", 0, "tessellate via sdfx marching cubes at this cell resolution instead of exact prism meshes")
	flag.Parse()

	assembly, err := planetary.Generate(p)
	if err != nil {
		log.Fatal(err)
	}
	layout := assembly.Layout
	fmt.Printf("ring teeth: %d (sun %d + 2 x planet %d)\n", layout.RingTeeth, layout.SunTeeth, layout.PlanetTeeth)
	fmt.Printf("planet orbit radius: %g\n", layout.OrbitRadius)

	if err := os.MkdirAll(outDir, 0o777); err != nil {
		log.Fatal(err)
	}

	var assemblyModel []render.Triangle3
	for _, solid := range assembly.Solids() {
		model, err := solidModel(solid, mcCells)
		if err != nil {
			log.Fatalf("%s: %v", solid.Name, err)
		}
		name := filepath.Join(outDir, solid.Name+".stl")
		if err := render.CreateSTL(name, model); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		fmt.Printf("wrote %s (%d triangles)\n", name, len(model))
		assemblyModel = append(assemblyModel, model...)
	}
	assemblySTL := filepath.Join(outDir, "assembly.stl")
	if err := render.CreateSTL(assemblySTL, assemblyModel); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d triangles)\n", assemblySTL, len(assemblyModel))

	if plot != "" {
		if err := render.SaveProfilePlot(assembly.Sun.Profile, plot); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", plot)
	}
	if preview != "" {
		if err := render.PreviewPNG(assemblySTL, preview, render.DefaultView()); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", preview)
	}
}

// solidModel meshes one solid, either exactly or through the sdfx
// marching cubes renderer.
func solidModel(solid planetary.Solid, mcCells int) ([]render.Triangle3, error) {
	if mcCells <= 0 {
		return render.SolidMesh(solid)
	}
	body, err := sdfx.Solid(solid)
	if err != nil {
		return nil, err
	}
	return sdfx.ToTriangles(body, mcCells), nil
}
