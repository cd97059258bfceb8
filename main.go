package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDivisor = 15
	defaultSamples = 200
)

func main() {
	// A .env file next to the binary may supply the env defaults.
	_ = godotenv.Load()

	inputPath := flag.String("input", "Data CoE Team & Customers.xlsx", "Path to the source workbook")
	outputPath := flag.String("output", "", "Path to the output workbook (default dcoe_standup_roster_<date>.xlsx)")
	divisor := flag.Int("divisor", envInt("HOURS_DIVISOR", defaultDivisor), "Divisor scaling hours into weighting units")
	samples := flag.Int("samples", envInt("MAX_SAMPLES", defaultSamples), "Total number of pool rows to apportion")
	seedRaw := flag.String("seed", os.Getenv("RANDOM_SEED"), "Base random seed for reproducible shuffles (empty uses entropy)")
	flag.Parse()

	if *divisor <= 0 {
		exitWith("divisor must be > 0")
	}
	if *samples <= 0 {
		exitWith("samples must be > 0")
	}
	baseSeed, err := parseSeed(*seedRaw)
	if err != nil {
		exitWith(err.Error())
	}

	customers, resources, warnings, err := loadWorkbook(*inputPath)
	if err != nil {
		exitWith(err.Error())
	}
	if len(warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warning := range warnings {
			fmt.Printf("- %s\n", warning)
		}
		fmt.Println()
	}

	if err := assignOccurrences(customers, *divisor, *samples); err != nil {
		exitWith(err.Error())
	}
	pool := expandPool(customers)
	partitions := buildPartitions(pool, uniqueResources(resources), baseSeed)
	if len(partitions) == 0 {
		fmt.Println("Warning: no resources found, no sheets will be written")
	}

	out := *outputPath
	if out == "" {
		out = fmt.Sprintf("dcoe_standup_roster_%s.xlsx", time.Now().Format("20060102"))
	}
	if err := writeWorkbook(out, partitions); err != nil {
		exitWith(err.Error())
	}

	printSummary(customers, pool, partitions, baseSeed, out)
}

func exitWith(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	os.Exit(1)
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func parseSeed(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q", raw)
	}
	return &seed, nil
}

func printSummary(customers []*customer, pool []poolRow, partitions []partition, baseSeed *int64, out string) {
	fmt.Println("Standup Roster Allocation")
	fmt.Println(strings.Repeat("-", 25))
	fmt.Printf("Customers:  %d\n", len(customers))
	fmt.Printf("Pool Size:  %d\n", len(pool))
	fmt.Printf("Sheets:     %d\n", len(partitions))
	if baseSeed != nil {
		fmt.Printf("Base Seed:  %d\n", *baseSeed)
	} else {
		fmt.Println("Base Seed:  (entropy)")
	}

	fmt.Println("\nOccurrences")
	fmt.Println(strings.Repeat("-", 11))
	for _, item := range customers {
		fmt.Printf("%s | Hours: %.1f | Weight: %.2f | Exact: %.2f | Granted: %d\n",
			item.Name, item.Hours, item.Weight, item.Exact, item.Occurrences)
	}

	fmt.Printf("\nWorkbook written to %s\n", out)
}
