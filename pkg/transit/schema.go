// Package transit declares the document schemas of the transit dataset and
// the rules that hold across it: stop and route definitions, their field
// formats, and the dataset-wide key invariants.
package transit

import (
	"github.com/IllyaZhihunou/content/pkg/config"
	"github.com/IllyaZhihunou/content/pkg/document"
	"github.com/IllyaZhihunou/content/pkg/produce"
)

// Schema bundles the document producers for one dataset configuration. One
// instance is built per run and reused across every document.
type Schema struct {
	stops  produce.Producer[stopsDocument]
	routes produce.Producer[routesDocument]
}

// NewSchema composes the stop and route document producers with coordinate
// checks taken from bounds.
func NewSchema(bounds config.Bounds) *Schema {
	key := produce.Scalar(produce.String, produce.NonEmpty, produce.Key)
	text := produce.Scalar(produce.String, produce.NonEmpty)
	timeOfDay := produce.Scalar(produce.String, produce.NonEmpty, produce.TimeOfDay)
	timeList := produce.List(timeOfDay)

	stop := produce.MustStruct([]produce.FieldSpec[Stop]{
		produce.Field("key", key, func(s *Stop, item produce.Item[string]) { s.Key = item }),
		produce.Field("name", text, func(s *Stop, item produce.Item[string]) { s.Name = item }),
		produce.Field("latitude",
			produce.Scalar(produce.Float, produce.FloatRange(bounds.Latitude.Min, bounds.Latitude.Max)),
			func(s *Stop, item produce.Item[float64]) { s.Latitude = item }),
		produce.Field("longitude",
			produce.Scalar(produce.Float, produce.FloatRange(bounds.Longitude.Min, bounds.Longitude.Max)),
			func(s *Stop, item produce.Item[float64]) { s.Longitude = item }),
		produce.OptionalField("direction", text, func(s *Stop, item produce.Item[string]) { s.Direction = &item }),
	})

	routeStop := produce.MustStruct([]produce.FieldSpec[RouteStop]{
		produce.Field("key", key, func(rs *RouteStop, item produce.Item[string]) { rs.Key = item }),
		produce.Field("shift", timeOfDay, func(rs *RouteStop, item produce.Item[string]) { rs.Shift = item }),
	})

	trip := produce.MustStruct([]produce.FieldSpec[RouteTrip]{
		produce.OptionalField("workdays", timeList,
			func(rt *RouteTrip, item produce.Item[[]produce.Item[string]]) { rt.Workdays = &item }),
		produce.OptionalField("weekend", timeList,
			func(rt *RouteTrip, item produce.Item[[]produce.Item[string]]) { rt.Weekend = &item }),
		produce.OptionalField("everyday", timeList,
			func(rt *RouteTrip, item produce.Item[[]produce.Item[string]]) { rt.Everyday = &item }),
	}, validTripShape)

	route := produce.MustStruct([]produce.FieldSpec[Route]{
		produce.Field("number", text, func(r *Route, item produce.Item[string]) { r.Number = item }),
		produce.Field("description", text, func(r *Route, item produce.Item[string]) { r.Description = item }),
		produce.Field("stops", produce.List(routeStop),
			func(r *Route, item produce.Item[[]produce.Item[RouteStop]]) { r.Stops = item }),
		produce.Field("trips", trip, func(r *Route, item produce.Item[RouteTrip]) { r.Trips = item }),
		produce.OptionalField("hidden", produce.Scalar(produce.Bool),
			func(r *Route, item produce.Item[bool]) { r.Hidden = &item }),
	})

	return &Schema{
		stops: produce.MustStruct([]produce.FieldSpec[stopsDocument]{
			produce.Field("stops", produce.List(stop),
				func(d *stopsDocument, item produce.Item[[]produce.Item[Stop]]) { d.Stops = item }),
		}),
		routes: produce.MustStruct([]produce.FieldSpec[routesDocument]{
			produce.Field("routes", produce.List(route),
				func(d *routesDocument, item produce.Item[[]produce.Item[Route]]) { d.Routes = item }),
		}),
	}
}

// validTripShape enforces the schedule forms a route may declare: the same
// list every day, or separate workday/weekend lists. Mixing everyday with
// the split lists contradicts itself, and declaring nothing schedules
// nothing.
func validTripShape(trip RouteTrip, node document.Node) error {
	split := trip.Workdays != nil || trip.Weekend != nil
	everyday := trip.Everyday != nil

	if everyday != split {
		return nil
	}
	return produce.NewViolationf(produce.CodeSchema, node.Span(),
		"Either one of workdays or weekend, or only everyday trips expected")
}
