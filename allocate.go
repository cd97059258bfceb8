package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

type customer struct {
	Name        string
	Ceremony    string
	Hours       float64
	Weight      float64
	Proportion  float64
	Exact       float64
	Occurrences int
}

type poolRow struct {
	Customer string
	Ceremony string
	Hours    float64
}

var errZeroWeight = errors.New("total weight is zero")

func ceremonyLabel(userstory string) string {
	return fmt.Sprintf("%s: Data CoE ceremony", userstory)
}

// assignOccurrences apportions totalSamples across the customers in
// proportion to hours/divisor using the largest-remainder method. After
// it returns, the occurrence counts sum to exactly totalSamples.
func assignOccurrences(customers []*customer, divisor, totalSamples int) error {
	var weightSum float64
	for _, item := range customers {
		item.Weight = item.Hours / float64(divisor)
		weightSum += item.Weight
	}
	if weightSum == 0 {
		return errZeroWeight
	}

	allocated := 0
	for _, item := range customers {
		item.Proportion = item.Weight / weightSum
		item.Exact = item.Proportion * float64(totalSamples)
		item.Occurrences = int(math.Floor(item.Exact))
		allocated += item.Occurrences
	}

	remaining := totalSamples - allocated
	if remaining <= 0 {
		return nil
	}
	ranked := make([]*customer, len(customers))
	copy(ranked, customers)
	// Stable sort: equal fractional parts keep input order, so earlier
	// rows win ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return fractionalPart(ranked[i]) > fractionalPart(ranked[j])
	})
	if remaining > len(ranked) {
		remaining = len(ranked)
	}
	for _, item := range ranked[:remaining] {
		item.Occurrences++
	}
	return nil
}

func fractionalPart(item *customer) float64 {
	return item.Exact - math.Floor(item.Exact)
}

// expandPool repeats each customer's row Occurrences times, in input
// order. The pool is reshuffled per resource downstream, so the order
// only matters for determinism.
func expandPool(customers []*customer) []poolRow {
	var pool []poolRow
	for _, item := range customers {
		for i := 0; i < item.Occurrences; i++ {
			pool = append(pool, poolRow{
				Customer: item.Name,
				Ceremony: item.Ceremony,
				Hours:    item.Hours,
			})
		}
	}
	return pool
}
