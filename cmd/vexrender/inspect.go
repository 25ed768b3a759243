package main

import (
	"fmt"
	"io"

	"vex"
)

func inspectCommand(f SceneFlags, point []float32, w io.Writer) error {
	s, err := loadSetup(f.Config, f.flags())
	if err != nil {
		return err
	}
	if len(point) != 3 {
		return fmt.Errorf("--point needs 3 components, got %d", len(point))
	}

	cam := s.camera
	world := cam.World()
	view, err := cam.View()
	if err != nil {
		return err
	}
	proj := cam.Projection(1)
	vp := proj.Mul(view)

	fmt.Fprintf(w, "camera   %v -> %v (up %v)\n", cam.Position, cam.Target, cam.Up)
	fmt.Fprintf(w, "world    det %.6g\n%v\n", world.Determinant(), world)
	fmt.Fprintf(w, "view     det %.6g\n%v\n", view.Determinant(), view)
	fmt.Fprintf(w, "proj     det %.6g\n%v\n", proj.Determinant(), proj)

	p := vex.NewVector3(point[0], point[1], point[2])
	size := s.cfg.RenderSize
	screen, err := cam.Project([]vex.Vector3{p}, vex.Matrix4Identity(), size, size)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "point    %v\n", p)
	fmt.Fprintf(w, "eye      %v\n", view.TransformPoint3(p))
	if screen[0].IsValid() {
		fmt.Fprintf(w, "screen   %v (%dx%d)\n", screen[0], size, size)
	} else {
		fmt.Fprintln(w, "screen   behind camera")
	}

	for i, o := range s.objects {
		lo, hi := o.Mesh.Bounds()
		fmt.Fprintf(w, "object %d %q: %d verts, %d tris, bounds %v..%v\n",
			i, o.Mesh.Name, len(o.Mesh.Positions), len(o.Mesh.Tris), lo, hi)
	}
	fmt.Fprintf(w, "view-projection (row-major f32)\n%v\n", vp.F32())
	return nil
}
