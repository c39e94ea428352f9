package transit

import (
	"fmt"

	"github.com/IllyaZhihunou/content/pkg/document"
	"github.com/IllyaZhihunou/content/pkg/produce"
)

// EmptyDatasetError reports a dataset with no stops or no routes at all.
// A network without either is not a network, however valid its documents.
type EmptyDatasetError struct {
	Collection string // "stops" or "routes"
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("No %s found.", e.Collection)
}

// Validate runs the dataset-wide invariants in diagnostic order: emptiness
// first, then key uniqueness, then referential integrity. An empty stop set
// would otherwise surface as a misleading integrity failure on the first
// route.
func Validate(content *Content) error {
	for _, validate := range []func(*Content) error{
		ValidateNonEmpty,
		ValidateStopKeyUniqueness,
		ValidateStopKeyIntegrity,
	} {
		if err := validate(content); err != nil {
			return err
		}
	}
	return nil
}

// ValidateNonEmpty fails when the dataset has no stops or no routes.
func ValidateNonEmpty(content *Content) error {
	if len(content.Stops) == 0 {
		return &EmptyDatasetError{Collection: "stops"}
	}
	if len(content.Routes) == 0 {
		return &EmptyDatasetError{Collection: "routes"}
	}
	return nil
}

// ValidateStopKeyUniqueness fails on the first stop key defined a second
// time, in dataset order. The violation carries two spans: the repeated
// definition and the first one.
func ValidateStopKeyUniqueness(content *Content) error {
	firstUse := make(map[string]produce.Item[string], len(content.Stops))
	for _, stop := range content.Stops {
		key := stop.Value.Key
		if first, used := firstUse[key.Value]; used {
			return &produce.Violation{
				Code:    produce.CodeUniqueness,
				Message: fmt.Sprintf("Key %q used second time", key.Value),
				Spans:   []document.Span{key.Span, first.Span},
			}
		}
		firstUse[key.Value] = key
	}
	return nil
}

// ValidateStopKeyIntegrity fails on the first route stop referring to a key
// no stop declares. Routes and their stops are checked in dataset order.
func ValidateStopKeyIntegrity(content *Content) error {
	declared := make(map[string]struct{}, len(content.Stops))
	for _, stop := range content.Stops {
		declared[stop.Value.Key.Value] = struct{}{}
	}

	for _, route := range content.Routes {
		for _, routeStop := range route.Value.Stops.Value {
			key := routeStop.Value.Key
			if _, ok := declared[key.Value]; !ok {
				return produce.NewViolationf(produce.CodeIntegrity, key.Span, "Undeclared stop key %q", key.Value)
			}
		}
	}
	return nil
}
