package chart

import (
	"sort"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// Translate projects every point for view v and records its depth. The
// depth of a point is the depth of its floor point.
func (g *Geometry) Translate(v View) {
	for i := range g.Points {
		p := &g.Points[i]
		p.Trans = v.Translate(p.Point)
		p.Screen = v.ToScreen(p.Trans)
		p.Dist = v.Depth(v.Translate(p.Bottom))
	}
}

// SortPoints fills Order with the point indices. When sorted is set the
// points are ordered back to front by depth; ties keep input order.
func (g *Geometry) SortPoints(sorted bool) {
	g.Order = g.Order[:0]
	for i := range g.Points {
		g.Order = append(g.Order, i)
	}
	if !sorted {
		return
	}
	sort.SliceStable(g.Order, func(a, b int) bool {
		return g.Points[g.Order[a]].Dist > g.Points[g.Order[b]].Dist
	})
}

// SortSurfaces sets the depth of each surface from its center and orders
// them back to front. On equal depth the top surface goes last.
func SortSurfaces(surfaces []Surface, v View) {
	for i := range surfaces {
		surfaces[i].Dist = v.Depth(v.Translate(surfaces[i].Center))
	}
	sort.SliceStable(surfaces, func(i, j int) bool {
		a, b := surfaces[i], surfaces[j]
		if a.Dist != b.Dist {
			return a.Dist > b.Dist
		}
		return !a.Top && b.Top
	})
}

// box builds the five visible faces of a bar centered on p with the given
// half widths, standing on zMin.
func box(v View, p math3d.Vec3, xWidth, yWidth, zMin float64) []Surface {
	corner := func(x, y, z float64) Corner {
		pt := math3d.V3(x, y, z)
		return Corner{Point: pt, Screen: v.Project(pt)}
	}
	top := [4]Corner{
		corner(p.X-xWidth, p.Y-yWidth, p.Z),
		corner(p.X+xWidth, p.Y-yWidth, p.Z),
		corner(p.X+xWidth, p.Y+yWidth, p.Z),
		corner(p.X-xWidth, p.Y+yWidth, p.Z),
	}
	bottom := [4]Corner{
		corner(p.X-xWidth, p.Y-yWidth, zMin),
		corner(p.X+xWidth, p.Y-yWidth, zMin),
		corner(p.X+xWidth, p.Y+yWidth, zMin),
		corner(p.X-xWidth, p.Y+yWidth, zMin),
	}

	surfaces := []Surface{{
		Corners: top,
		Center:  math3d.Avg(bottom[0].Point, bottom[2].Point),
		Top:     true,
	}}
	for i := range 4 {
		j := (i + 1) % 4
		surfaces = append(surfaces, Surface{
			Corners: [4]Corner{top[i], top[j], bottom[j], bottom[i]},
			Center:  math3d.Avg(bottom[j].Point, bottom[i].Point),
		})
	}
	SortSurfaces(surfaces, v)
	return surfaces
}
