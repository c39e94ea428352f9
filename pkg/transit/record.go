package transit

import "github.com/IllyaZhihunou/content/pkg/produce"

// Stop is one produced stop record. Every field keeps the source position of
// the node its value came from; optional fields are nil when absent.
type Stop struct {
	Key       produce.Item[string]
	Name      produce.Item[string]
	Latitude  produce.Item[float64]
	Longitude produce.Item[float64]
	Direction *produce.Item[string]
}

// RouteStop ties a route to a stop key, with the time shift from the trip
// start to this stop.
type RouteStop struct {
	Key   produce.Item[string]
	Shift produce.Item[string]
}

// RouteTrip holds the departure time lists of one route. Exactly one shape
// is valid: either Everyday alone, or Workdays and/or Weekend without
// Everyday.
type RouteTrip struct {
	Workdays *produce.Item[[]produce.Item[string]]
	Weekend  *produce.Item[[]produce.Item[string]]
	Everyday *produce.Item[[]produce.Item[string]]
}

// Route is one produced route record.
type Route struct {
	Number      produce.Item[string]
	Description produce.Item[string]
	Stops       produce.Item[[]produce.Item[RouteStop]]
	Trips       produce.Item[RouteTrip]
	Hidden      *produce.Item[bool]
}

// stopsDocument and routesDocument are the root shapes of content files:
// a single collection under a fixed key.
type stopsDocument struct {
	Stops produce.Item[[]produce.Item[Stop]]
}

type routesDocument struct {
	Routes produce.Item[[]produce.Item[Route]]
}
