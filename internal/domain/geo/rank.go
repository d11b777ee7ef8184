package geo

import (
	"math"
	"sort"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RankedVet is a vet profile annotated with its distance from a query point.
// DistanceKm is nil when no query point was given or when the vet has no
// stored coordinates.
type RankedVet struct {
	*entity.Vet
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// rankedEntry pairs a result with its sort key. The key is kept apart from
// the output so the infinity sentinel never reaches a JSON encoder, which
// cannot represent it.
type rankedEntry struct {
	vet RankedVet
	key float64
}

// RankVets annotates, filters, and sorts a vet collection by distance from
// an optional query point.
//
//   - query nil: the collection is returned in its original order with no
//     distance attached (the "browse all" case). radiusKm is ignored.
//   - query set: every vet is annotated with its haversine distance. Vets
//     without coordinates sort last using an infinity sentinel rather than
//     letting NaN leak into the ordering; their DistanceKm stays nil.
//   - radiusKm set: only vets with distance <= radius are kept (inclusive),
//     which also drops vets without coordinates.
//
// The sort is stable: ties keep their original collection order. The input
// slice and its elements are never modified.
func RankVets(vets []*entity.Vet, query *orb.Point, radiusKm *float64) []RankedVet {
	if query == nil {
		ranked := make([]RankedVet, 0, len(vets))
		for _, v := range vets {
			ranked = append(ranked, RankedVet{Vet: v})
		}

		return ranked
	}

	entries := make([]rankedEntry, 0, len(vets))

	for _, v := range vets {
		entry := rankedEntry{vet: RankedVet{Vet: v}, key: math.Inf(1)}

		if v.HasCoordinates() {
			d := DistanceKm(*query, orb.Point{*v.Longitude, *v.Latitude})
			entry.vet.DistanceKm = &d
			entry.key = d
		}

		if radiusKm != nil && entry.key > *radiusKm {
			continue
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	ranked := make([]RankedVet, 0, len(entries))
	for _, entry := range entries {
		ranked = append(ranked, entry.vet)
	}

	return ranked
}
