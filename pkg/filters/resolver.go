// Package filters recomputes the area and cuisine options offered for a
// region/area selection and drops selections that are no longer offered.
package filters

import (
	"context"
	"slices"
)

// OptionSource lists the distinct values stored for each filter dimension.
type OptionSource interface {
	DistinctRegions(ctx context.Context) ([]string, error)
	DistinctAreas(ctx context.Context, regions []string) ([]string, error)
	DistinctCuisines(ctx context.Context, regions []string, areas []string) ([]string, error)
}

type Selection struct {
	Regions  []string `json:"counties"`
	Areas    []string `json:"areas"`
	Cuisines []string `json:"cuisines"`
	Prices   []string `json:"prices"`
}

type Resolution struct {
	Regions   []string  `json:"counties"`
	Areas     []string  `json:"areas"`
	Cuisines  []string  `json:"cuisines"`
	Selection Selection `json:"selection"`
}

// Resolve narrows areas by the selected regions, then cuisines by the
// selected regions and the areas that survived.
func Resolve(ctx context.Context, source OptionSource, selection Selection) (*Resolution, error) {
	regions, err := source.DistinctRegions(ctx)
	if err != nil {
		return nil, err
	}

	areas, err := source.DistinctAreas(ctx, selection.Regions)
	if err != nil {
		return nil, err
	}

	keptAreas := Retain(selection.Areas, areas)

	cuisines, err := source.DistinctCuisines(ctx, selection.Regions, keptAreas)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Regions:  regions,
		Areas:    areas,
		Cuisines: cuisines,
		Selection: Selection{
			Regions:  slices.Clone(selection.Regions),
			Areas:    keptAreas,
			Cuisines: Retain(selection.Cuisines, cuisines),
			Prices:   slices.Clone(selection.Prices),
		},
	}, nil
}

// Retain returns the selected values that are still among options, in
// selection order.
func Retain(selected []string, options []string) []string {
	kept := make([]string, 0, len(selected))

	for _, value := range selected {
		if slices.Contains(options, value) {
			kept = append(kept, value)
		}
	}

	return kept
}
