package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	customersSheet = "customers"
	resourcesSheet = "resources"

	maxSheetNameLen = 31
)

func loadWorkbook(path string) ([]*customer, []string, []string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to open source workbook: %w", err)
	}
	defer file.Close()

	customers, warnings, err := loadCustomers(file)
	if err != nil {
		return nil, nil, nil, err
	}
	resources, err := loadResources(file)
	if err != nil {
		return nil, nil, nil, err
	}
	return customers, resources, warnings, nil
}

func loadCustomers(file *excelize.File) ([]*customer, []string, error) {
	rows, err := file.GetRows(customersSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read %s sheet: %w", customersSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s sheet is empty", customersSheet)
	}
	index := mapHeaders(rows[0])

	required := []string{"customer", "hours"}
	missing := missingHeaders(required, index)
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required column: %s", strings.Join(missing, ", "))
	}

	var customers []*customer
	var warnings []string
	for i, row := range rows[1:] {
		line := i + 2
		name := cellAt(row, index, "customer")
		hoursRaw := cellAt(row, index, "hours")
		if name == "" && hoursRaw == "" {
			continue
		}
		hours, err := strconv.ParseFloat(hoursRaw, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: invalid hours %q", line, hoursRaw))
			continue
		}
		if hours < 0 {
			warnings = append(warnings, fmt.Sprintf("row %d: negative hours", line))
			continue
		}
		userstory := cellAt(row, index, "userstory")
		if userstory == "" {
			userstory = name
		}
		customers = append(customers, &customer{
			Name:     name,
			Ceremony: ceremonyLabel(userstory),
			Hours:    hours,
		})
	}

	if len(customers) == 0 {
		return nil, warnings, fmt.Errorf("no valid customer rows found")
	}
	return customers, warnings, nil
}

func loadResources(file *excelize.File) ([]string, error) {
	rows, err := file.GetRows(resourcesSheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s sheet: %w", resourcesSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", resourcesSheet)
	}
	index := mapHeaders(rows[0])
	if _, ok := index["resource"]; !ok {
		return nil, fmt.Errorf("missing required column: resource")
	}

	var resources []string
	for _, row := range rows[1:] {
		name := cellAt(row, index, "resource")
		if name == "" {
			continue
		}
		resources = append(resources, name)
	}
	return resources, nil
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		index[key] = i
	}
	return index
}

func missingHeaders(required []string, index map[string]int) []string {
	var missing []string
	for _, key := range required {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func cellAt(row []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// writeWorkbook writes one sheet per partition. With no partitions the
// workbook is still saved, carrying only the default empty sheet.
func writeWorkbook(path string, partitions []partition) error {
	file := excelize.NewFile()
	defer file.Close()

	defaultSheet := file.GetSheetName(0)
	header := []interface{}{"customer", "ceremony", "claimed", "what"}

	keepDefault := len(partitions) == 0
	for n, part := range partitions {
		name := sanitizeSheetName(part.Resource)
		if name == defaultSheet {
			keepDefault = true
		}
		index, err := file.NewSheet(name)
		if err != nil {
			return fmt.Errorf("unable to create sheet %q: %w", name, err)
		}
		if n == 0 {
			file.SetActiveSheet(index)
		}
		if err := file.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("unable to write header for sheet %q: %w", name, err)
		}
		for i, row := range part.Rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return fmt.Errorf("unable to address row %d: %w", i+2, err)
			}
			values := []interface{}{row.Customer, row.Ceremony, row.Claimed, row.What}
			if err := file.SetSheetRow(name, cell, &values); err != nil {
				return fmt.Errorf("unable to write sheet %q: %w", name, err)
			}
		}
	}

	if !keepDefault {
		if err := file.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("unable to drop default sheet: %w", err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}
	return nil
}

// sanitizeSheetName fits a resource name into xlsx sheet-name rules:
// 31 characters max, no []:*?/\ characters, not empty.
func sanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)
	runes := []rune(cleaned)
	if len(runes) > maxSheetNameLen {
		cleaned = string(runes[:maxSheetNameLen])
	}
	if cleaned == "" {
		cleaned = "resource"
	}
	return cleaned
}
