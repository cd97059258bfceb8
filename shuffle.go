package main

import "math/rand"

type outputRow struct {
	Customer string
	Ceremony string
	Claimed  string
	What     string
}

type partition struct {
	Resource string
	Rows     []outputRow
}

func uniqueResources(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	return unique
}

// buildPartitions produces one shuffled copy of the pool per resource.
// With a base seed, resource i uses seed+i so every run reproduces the
// same orders and no two resources share a generator. Without a seed,
// each resource gets an independent entropy-seeded generator.
func buildPartitions(pool []poolRow, resources []string, baseSeed *int64) []partition {
	partitions := make([]partition, 0, len(resources))
	for i, resource := range resources {
		var source rand.Source
		if baseSeed != nil {
			source = rand.NewSource(*baseSeed + int64(i))
		} else {
			source = rand.NewSource(rand.Int63())
		}
		partitions = append(partitions, partition{
			Resource: resource,
			Rows:     shufflePool(pool, rand.New(source)),
		})
	}
	return partitions
}

func shufflePool(pool []poolRow, rng *rand.Rand) []outputRow {
	rows := make([]outputRow, len(pool))
	for i, row := range pool {
		rows[i] = outputRow{Customer: row.Customer, Ceremony: row.Ceremony}
	}
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	return rows
}
