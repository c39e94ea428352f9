package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IllyaZhihunou/content/pkg/console"
	"github.com/IllyaZhihunou/content/pkg/produce"
	"github.com/IllyaZhihunou/content/pkg/transit"
)

// ShowStats validates the content directory and prints summary tables for
// it. Statistics are only defined for a valid dataset, so any validation
// failure aborts exactly like a plain validation run.
func ShowStats(contentDir string, verbose bool) error {
	content, err := loadContent(contentDir, verbose)
	if err == nil {
		err = transit.Validate(content)
	}
	if err != nil {
		return diagnosticError(err)
	}

	fmt.Println(console.RenderTable(console.TableConfig{
		Title:   "Dataset",
		Headers: []string{"Collection", "Records"},
		Rows: [][]string{
			{"stops", strconv.Itoa(len(content.Stops))},
			{"routes", strconv.Itoa(len(content.Routes))},
		},
	}))

	rows := make([][]string, 0, len(content.Routes))
	var totalStops, totalDepartures int
	for _, route := range content.Routes {
		r := route.Value
		stops := len(r.Stops.Value)
		departures := countDepartures(r.Trips.Value)
		totalStops += stops
		totalDepartures += departures
		rows = append(rows, []string{
			r.Number.Value,
			strconv.Itoa(stops),
			strconv.Itoa(departures),
			describeSchedule(r.Trips.Value),
		})
	}

	fmt.Println(console.RenderTable(console.TableConfig{
		Title:     "Routes",
		Headers:   []string{"Route", "Stops", "Departures", "Schedule"},
		Rows:      rows,
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", strconv.Itoa(totalStops), strconv.Itoa(totalDepartures), ""},
	}))
	return nil
}

// countDepartures sums the departure times a route declares across its
// schedule lists.
func countDepartures(trips transit.RouteTrip) int {
	count := 0
	for _, list := range []*produce.Item[[]produce.Item[string]]{trips.Workdays, trips.Weekend, trips.Everyday} {
		if list != nil {
			count += len(list.Value)
		}
	}
	return count
}

// describeSchedule names the schedule shape a route uses.
func describeSchedule(trips transit.RouteTrip) string {
	if trips.Everyday != nil {
		return "everyday"
	}
	parts := make([]string, 0, 2)
	if trips.Workdays != nil {
		parts = append(parts, "workdays")
	}
	if trips.Weekend != nil {
		parts = append(parts, "weekend")
	}
	return strings.Join(parts, "+")
}
