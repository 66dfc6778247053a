package importer

import (
	"fmt"
	"strings"

	"github.com/piwi3910/dxf-takeoff/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// Load reads a DXF drawing and converts its model-space entities into the
// internal entity model, preserving file order.
//
// A file that cannot be opened or parsed is a fatal error, as is a known
// entity type with missing or invalid attributes. Entity types the engine
// does not measure are kept as model.Other so the caller can report them,
// but they contribute to no metric.
func Load(path string) (Result, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot open DXF file: %w", err)
	}

	result := Result{}
	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Warnings = append(result.Warnings, "DXF file contains no entities")
		return result, nil
	}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			if len(e.Start) < 2 || len(e.End) < 2 {
				return Result{}, fmt.Errorf("malformed LINE entity: missing endpoint coordinates")
			}
			result.Entities = append(result.Entities, model.Line{
				Start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				End:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		case *entity.LwPolyline:
			outline, err := vertexOutline(e.Vertices)
			if err != nil {
				return Result{}, fmt.Errorf("malformed LWPOLYLINE entity: %w", err)
			}
			result.Entities = append(result.Entities, model.LwPolyline{Vertices: outline})

		case *entity.Polyline:
			outline, err := heavyVertexOutline(e.Vertices)
			if err != nil {
				return Result{}, fmt.Errorf("malformed POLYLINE entity: %w", err)
			}
			result.Entities = append(result.Entities, model.Polyline{Vertices: outline})

		case *entity.Circle:
			if len(e.Center) < 2 {
				return Result{}, fmt.Errorf("malformed CIRCLE entity: missing center point")
			}
			if e.Radius < 0 {
				return Result{}, fmt.Errorf("malformed CIRCLE entity: negative radius %g", e.Radius)
			}
			result.Entities = append(result.Entities, model.Circle{
				Center: model.Point2D{X: e.Center[0], Y: e.Center[1]},
				Radius: e.Radius,
			})

		case *entity.Arc:
			if len(e.Circle.Center) < 2 {
				return Result{}, fmt.Errorf("malformed ARC entity: missing center point")
			}
			if e.Circle.Radius < 0 {
				return Result{}, fmt.Errorf("malformed ARC entity: negative radius %g", e.Circle.Radius)
			}
			result.Entities = append(result.Entities, model.Arc{
				Center:     model.Point2D{X: e.Circle.Center[0], Y: e.Circle.Center[1]},
				Radius:     e.Circle.Radius,
				StartAngle: e.Angle[0],
				EndAngle:   e.Angle[1],
			})

		case *entity.Text:
			result.Entities = append(result.Entities, model.Text{})

		default:
			// Kept for reporting, measured as nothing.
			name := strings.TrimPrefix(fmt.Sprintf("%T", ent), "*entity.")
			result.Entities = append(result.Entities, model.Other{Type: name})
		}
	}

	return result, nil
}

// vertexOutline converts LWPOLYLINE vertex data ([x, y, ...] per vertex)
// into an outline.
func vertexOutline(vertices [][]float64) (model.Outline, error) {
	outline := make(model.Outline, 0, len(vertices))
	for i, v := range vertices {
		if len(v) < 2 {
			return nil, fmt.Errorf("vertex %d is missing coordinates", i)
		}
		outline = append(outline, model.Point2D{X: v[0], Y: v[1]})
	}
	return outline, nil
}

// heavyVertexOutline converts POLYLINE vertex entities into an outline.
func heavyVertexOutline(vertices []*entity.Vertex) (model.Outline, error) {
	outline := make(model.Outline, 0, len(vertices))
	for i, v := range vertices {
		if v == nil || len(v.Coord) < 2 {
			return nil, fmt.Errorf("vertex %d is missing coordinates", i)
		}
		outline = append(outline, model.Point2D{X: v.Coord[0], Y: v.Coord[1]})
	}
	return outline, nil
}
