package transit

import (
	"strings"
	"testing"

	"github.com/IllyaZhihunou/content/pkg/config"
	"github.com/IllyaZhihunou/content/pkg/document"
	"github.com/IllyaZhihunou/content/pkg/produce"
)

func testSchema() *Schema {
	return NewSchema(config.Default().Bounds)
}

func parseDoc(t *testing.T, content string) document.Node {
	t.Helper()
	node, err := document.Parse("test.yaml", []byte(content))
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	return node
}

func produceStops(t *testing.T, content string) ([]produce.Item[Stop], error) {
	t.Helper()
	doc, err := testSchema().stops.Produce(parseDoc(t, content))
	if err != nil {
		return nil, err
	}
	return doc.Value.Stops.Value, nil
}

func produceRoutes(t *testing.T, content string) ([]produce.Item[Route], error) {
	t.Helper()
	doc, err := testSchema().routes.Produce(parseDoc(t, content))
	if err != nil {
		return nil, err
	}
	return doc.Value.Routes.Value, nil
}

const validStopsDoc = `stops:
  - key: vakzal
    name: Vakzal
    latitude: 55.52
    longitude: 28.64
    direction: to the center
  - key: baravuha-1
    name: Баравуха
    latitude: 55.48
    longitude: 28.61
`

func TestStopsDocument(t *testing.T) {
	stops, err := produceStops(t, validStopsDoc)
	if err != nil {
		t.Fatalf("Produce() returned unexpected error: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("Expected 2 stops, got %d", len(stops))
	}

	first := stops[0].Value
	if first.Key.Value != "vakzal" || first.Name.Value != "Vakzal" {
		t.Errorf("Unexpected first stop: key=%q name=%q", first.Key.Value, first.Name.Value)
	}
	if first.Latitude.Value != 55.52 || first.Longitude.Value != 28.64 {
		t.Errorf("Unexpected coordinates: %v, %v", first.Latitude.Value, first.Longitude.Value)
	}
	if first.Direction == nil || first.Direction.Value != "to the center" {
		t.Errorf("Expected direction 'to the center', got %+v", first.Direction)
	}
	// The key item's span points at the key's value node.
	if first.Key.Span.Start.Line != 1 || first.Key.Span.Start.Column != 9 {
		t.Errorf("Expected key span at 1:9, got %d:%d",
			first.Key.Span.Start.Line, first.Key.Span.Start.Column)
	}

	second := stops[1].Value
	if second.Name.Value != "Баравуха" {
		t.Errorf("Expected non-ASCII name to pass through, got %q", second.Name.Value)
	}
	if second.Direction != nil {
		t.Errorf("Expected absent direction to stay nil, got %+v", second.Direction)
	}
}

func TestStopsDocumentFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "document is not a mapping",
			content: "- stops\n",
			wantMsg: "Mapping expected",
		},
		{
			name:    "unknown root item",
			content: "stations:\n  - key: a\n",
			wantMsg: `Item "stations" not expected`,
		},
		{
			name:    "stops is not a sequence",
			content: "stops: vakzal\n",
			wantMsg: "Sequence expected",
		},
		{
			name:    "stop key with invalid character",
			content: "stops:\n  - key: Vakzal\n    name: Vakzal\n    latitude: 55.5\n    longitude: 28.6\n",
			wantMsg: `Invalid character "V" in "Vakzal"`,
		},
		{
			name:    "empty stop name",
			content: "stops:\n  - key: vakzal\n    name: \"\"\n    latitude: 55.5\n    longitude: 28.6\n",
			wantMsg: "Non empty value required",
		},
		{
			name:    "latitude out of bounds",
			content: "stops:\n  - key: vakzal\n    name: Vakzal\n    latitude: 55.7\n    longitude: 28.6\n",
			wantMsg: "Value expected to be in 55.4..55.6 interval",
		},
		{
			name:    "longitude not a number",
			content: "stops:\n  - key: vakzal\n    name: Vakzal\n    latitude: 55.5\n    longitude: east\n",
			wantMsg: `"east" is not a valid float number`,
		},
		{
			name:    "missing required name",
			content: "stops:\n  - key: vakzal\n    latitude: 55.5\n    longitude: 28.6\n",
			wantMsg: `Required item "name" not specified`,
		},
		{
			name:    "unexpected stop item",
			content: "stops:\n  - key: vakzal\n    name: Vakzal\n    latitude: 55.5\n    longitude: 28.6\n    color: red\n",
			wantMsg: `Item "color" not expected`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := produceStops(t, tt.content)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			violation, ok := produce.AsViolation(err)
			if !ok {
				t.Fatalf("Expected *Violation, got %T: %v", err, err)
			}
			if violation.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, violation.Message)
			}
		})
	}
}

const validRoutesDoc = `routes:
  - number: 4
    description: Vakzal - Baravuha
    stops:
      - key: vakzal
        shift: 00:00
      - key: baravuha-1
        shift: 00:25
    trips:
      workdays:
        - 06:30
        - 07:15
      weekend:
        - 08:00
  - number: 4a
    description: Shortened variant
    hidden: true
    stops:
      - key: vakzal
        shift: 00:00
    trips:
      everyday:
        - 10:10
`

func TestRoutesDocument(t *testing.T) {
	routes, err := produceRoutes(t, validRoutesDoc)
	if err != nil {
		t.Fatalf("Produce() returned unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(routes))
	}

	first := routes[0].Value
	if first.Number.Value != "4" {
		t.Errorf("Expected number '4' as raw text, got %q", first.Number.Value)
	}
	if first.Hidden != nil {
		t.Errorf("Expected absent hidden to stay nil, got %+v", first.Hidden)
	}
	if len(first.Stops.Value) != 2 {
		t.Fatalf("Expected 2 route stops, got %d", len(first.Stops.Value))
	}
	if got := first.Stops.Value[1].Value; got.Key.Value != "baravuha-1" || got.Shift.Value != "00:25" {
		t.Errorf("Unexpected second route stop: key=%q shift=%q", got.Key.Value, got.Shift.Value)
	}

	trips := first.Trips.Value
	if trips.Workdays == nil || len(trips.Workdays.Value) != 2 {
		t.Fatalf("Expected 2 workday departures, got %+v", trips.Workdays)
	}
	if trips.Workdays.Value[0].Value != "06:30" {
		t.Errorf("Expected first workday departure 06:30, got %q", trips.Workdays.Value[0].Value)
	}
	if trips.Weekend == nil || len(trips.Weekend.Value) != 1 {
		t.Errorf("Expected 1 weekend departure, got %+v", trips.Weekend)
	}
	if trips.Everyday != nil {
		t.Errorf("Expected everyday to stay nil, got %+v", trips.Everyday)
	}

	second := routes[1].Value
	if second.Hidden == nil || second.Hidden.Value != true {
		t.Errorf("Expected hidden route, got %+v", second.Hidden)
	}
	if second.Trips.Value.Everyday == nil {
		t.Error("Expected everyday departures on the second route")
	}
}

func routeDocWithTrips(trips []string) string {
	lines := []string{
		"routes:",
		"  - number: 4",
		"    description: Vakzal - Baravuha",
		"    stops:",
		"      - key: vakzal",
		"        shift: 00:00",
	}
	lines = append(lines, trips...)
	return strings.Join(lines, "\n") + "\n"
}

func TestTripShapes(t *testing.T) {
	tests := []struct {
		name  string
		trips []string
		valid bool
	}{
		{
			name:  "workdays only",
			trips: []string{"    trips:", "      workdays:", "        - 06:30"},
			valid: true,
		},
		{
			name:  "weekend only",
			trips: []string{"    trips:", "      weekend:", "        - 08:00"},
			valid: true,
		},
		{
			name: "workdays and weekend",
			trips: []string{
				"    trips:",
				"      workdays:", "        - 06:30",
				"      weekend:", "        - 08:00",
			},
			valid: true,
		},
		{
			name:  "everyday only",
			trips: []string{"    trips:", "      everyday:", "        - 10:10"},
			valid: true,
		},
		{
			name: "everyday with workdays",
			trips: []string{
				"    trips:",
				"      everyday:", "        - 10:10",
				"      workdays:", "        - 06:30",
			},
			valid: false,
		},
		{
			name: "everyday with weekend",
			trips: []string{
				"    trips:",
				"      everyday:", "        - 10:10",
				"      weekend:", "        - 08:00",
			},
			valid: false,
		},
		{
			name:  "no departure lists",
			trips: []string{"    trips: {}"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := produceRoutes(t, routeDocWithTrips(tt.trips))
			if tt.valid {
				if err != nil {
					t.Errorf("Expected trips to be accepted, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected trips to be rejected")
			}
			violation, _ := produce.AsViolation(err)
			want := "Either one of workdays or weekend, or only everyday trips expected"
			if violation == nil || violation.Message != want {
				t.Errorf("Expected message %q, got %v", want, err)
			}
		})
	}
}

func TestRoutesDocumentFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "trips must be a mapping",
			content: routeDocWithTrips([]string{"    trips:"}),
			wantMsg: "Mapping expected",
		},
		{
			name: "invalid departure time",
			content: routeDocWithTrips([]string{
				"    trips:", "      workdays:", "        - 6:30",
			}),
			wantMsg: `"6:30" is not a valid time`,
		},
		{
			name: "invalid shift",
			content: strings.Join([]string{
				"routes:",
				"  - number: 4",
				"    description: Vakzal - Baravuha",
				"    stops:",
				"      - key: vakzal",
				"        shift: start",
				"    trips:",
				"      everyday:",
				"        - 10:10",
				"",
			}, "\n"),
			wantMsg: `"start" is not a valid time`,
		},
		{
			name: "hidden must be a strict boolean",
			content: strings.Join([]string{
				"routes:",
				"  - number: 4",
				"    description: Vakzal - Baravuha",
				"    hidden: yes",
				"    stops:",
				"      - key: vakzal",
				"        shift: 00:00",
				"    trips:",
				"      everyday:",
				"        - 10:10",
				"",
			}, "\n"),
			wantMsg: `"yes" is not a valid boolean value`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := produceRoutes(t, tt.content)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			violation, ok := produce.AsViolation(err)
			if !ok {
				t.Fatalf("Expected *Violation, got %T: %v", err, err)
			}
			if violation.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, violation.Message)
			}
		})
	}
}

func TestSchemaBounds(t *testing.T) {
	// Bounds come from configuration, not from the schema itself.
	schema := NewSchema(config.Bounds{
		Latitude:  config.Range{Min: 53.8, Max: 54.0},
		Longitude: config.Range{Min: 27.4, Max: 27.7},
	})

	content := "stops:\n  - key: plosca\n    name: Plošča\n    latitude: 53.9\n    longitude: 27.56\n"
	if _, err := schema.stops.Produce(parseDoc(t, content)); err != nil {
		t.Errorf("Expected stop inside custom bounds to pass, got %v", err)
	}

	outside := "stops:\n  - key: vakzal\n    name: Vakzal\n    latitude: 55.52\n    longitude: 28.64\n"
	if _, err := schema.stops.Produce(parseDoc(t, outside)); err == nil {
		t.Error("Expected stop outside custom bounds to fail")
	}
}
