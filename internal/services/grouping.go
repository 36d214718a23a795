package services

import (
	"strings"

	"dataquad/recruitops/internal/models"
)

// normalizeClientName folds a client name into its grouping key. Missing
// names group under the empty key.
func normalizeClientName(name string) string {
	return strings.ToLower(name)
}

// GroupByClientName groups records by normalized client name. Keys appear in
// the order their first record appears in the input, and records keep their
// input order within each group.
func GroupByClientName[T models.ClientNamed](items []T) *models.ClientGroups[T] {
	groups := models.NewClientGroups[T]()
	for _, item := range items {
		groups.Add(normalizeClientName(item.GetClientName()), item)
	}
	return groups
}
