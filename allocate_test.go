package main

import (
	"errors"
	"math"
	"testing"
)

func buildCustomer(name string, hours float64) *customer {
	return &customer{
		Name:     name,
		Ceremony: ceremonyLabel(name),
		Hours:    hours,
	}
}

func TestAssignOccurrencesWorkedExample(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 15),
		buildCustomer("B", 30),
		buildCustomer("C", 45),
	}
	if err := assignOccurrences(customers, 15, 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantWeights := []float64{1, 2, 3}
	wantOccurrences := []int{33, 67, 100}
	for i, item := range customers {
		if item.Weight != wantWeights[i] {
			t.Fatalf("expected weight %.1f for %s, got %.2f", wantWeights[i], item.Name, item.Weight)
		}
		if item.Occurrences != wantOccurrences[i] {
			t.Fatalf("expected %d occurrences for %s, got %d", wantOccurrences[i], item.Name, item.Occurrences)
		}
	}
	if total := totalOccurrences(customers); total != 200 {
		t.Fatalf("expected 200 total occurrences, got %d", total)
	}
}

func TestAssignOccurrencesSumsExactly(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 7),
		buildCustomer("B", 11),
		buildCustomer("C", 13),
		buildCustomer("D", 29),
	}
	if err := assignOccurrences(customers, 15, 97); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total := totalOccurrences(customers); total != 97 {
		t.Fatalf("expected 97 total occurrences, got %d", total)
	}
	for _, item := range customers {
		if item.Occurrences < 0 {
			t.Fatalf("expected non-negative occurrences for %s, got %d", item.Name, item.Occurrences)
		}
		extra := item.Occurrences - int(math.Floor(item.Exact))
		if extra != 0 && extra != 1 {
			t.Fatalf("expected %s to hold floor or floor+1, got extra %d", item.Name, extra)
		}
	}
}

func TestAssignOccurrencesZeroWeight(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 0),
		buildCustomer("B", 0),
	}
	err := assignOccurrences(customers, 15, 200)
	if !errors.Is(err, errZeroWeight) {
		t.Fatalf("expected zero-weight error, got %v", err)
	}
}

func TestAssignOccurrencesTieBreakPrefersEarlierRows(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 15),
		buildCustomer("B", 15),
	}
	// Exact shares are 1.5 each; the single leftover goes to A.
	if err := assignOccurrences(customers, 15, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers[0].Occurrences != 2 {
		t.Fatalf("expected A to win the tie with 2, got %d", customers[0].Occurrences)
	}
	if customers[1].Occurrences != 1 {
		t.Fatalf("expected B to hold 1, got %d", customers[1].Occurrences)
	}
}

func TestAssignOccurrencesSaturatesBelowRecordCount(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 10),
		buildCustomer("B", 10),
		buildCustomer("C", 10),
	}
	if err := assignOccurrences(customers, 15, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total := totalOccurrences(customers); total != 2 {
		t.Fatalf("expected 2 total occurrences, got %d", total)
	}
	if customers[0].Occurrences != 1 || customers[1].Occurrences != 1 || customers[2].Occurrences != 0 {
		t.Fatalf("expected earlier rows to absorb the leftovers, got [%d %d %d]",
			customers[0].Occurrences, customers[1].Occurrences, customers[2].Occurrences)
	}
}

func TestExpandPoolLengthAndOrder(t *testing.T) {
	customers := []*customer{
		buildCustomer("A", 15),
		buildCustomer("B", 30),
		buildCustomer("C", 45),
	}
	if err := assignOccurrences(customers, 15, 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pool := expandPool(customers)
	if len(pool) != 200 {
		t.Fatalf("expected a pool of 200 rows, got %d", len(pool))
	}

	known := make(map[string]bool, len(customers))
	for _, item := range customers {
		known[item.Name] = true
	}
	offset := 0
	for _, item := range customers {
		for i := 0; i < item.Occurrences; i++ {
			row := pool[offset]
			if row.Customer != item.Name {
				t.Fatalf("expected row %d to belong to %s, got %s", offset, item.Name, row.Customer)
			}
			if row.Ceremony != item.Ceremony {
				t.Fatalf("expected ceremony %q at row %d, got %q", item.Ceremony, offset, row.Ceremony)
			}
			offset++
		}
	}
	for _, row := range pool {
		if !known[row.Customer] {
			t.Fatalf("pool contains fabricated customer %q", row.Customer)
		}
	}
}

func totalOccurrences(customers []*customer) int {
	total := 0
	for _, item := range customers {
		total += item.Occurrences
	}
	return total
}
