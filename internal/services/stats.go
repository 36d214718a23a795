package services

import (
	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

// BuildUserStats merges the two role-specific row batches into one list,
// employees first. Rows are coerced with the usual numeric rules; no
// deduplication happens across batches.
func BuildUserStats(employeeRows, teamleadRows []repositories.Row) []models.UserStats {
	stats := make([]models.UserStats, 0, len(employeeRows)+len(teamleadRows))
	for _, row := range employeeRows {
		stats = append(stats, mapEmployeeStats(row))
	}
	for _, row := range teamleadRows {
		stats = append(stats, mapTeamleadStats(row))
	}
	return stats
}

func mapEmployeeStats(row repositories.Row) models.UserStats {
	return models.UserStats{
		EmployeeID:           rowString(row, "employeeId"),
		EmployeeName:         rowString(row, "employeeName"),
		EmployeeEmail:        rowString(row, "employeeEmail"),
		Role:                 models.RoleEmployee,
		NumberOfClients:      rowInt(row["numberOfClients"]),
		NumberOfRequirements: rowInt(row["numberOfRequirements"]),
		NumberOfSubmissions:  intPtr(rowInt(row["numberOfSubmissions"])),
		NumberOfInterviews:   intPtr(rowInt(row["numberOfInterviews"])),
		NumberOfPlacements:   intPtr(rowInt(row["numberOfPlacements"])),
	}
}

func mapTeamleadStats(row repositories.Row) models.UserStats {
	return models.UserStats{
		EmployeeID:           rowString(row, "employeeId"),
		EmployeeName:         rowString(row, "employeeName"),
		EmployeeEmail:        rowString(row, "employeeEmail"),
		Role:                 models.RoleTeamlead,
		NumberOfClients:      rowInt(row["numberOfClients"]),
		NumberOfRequirements: rowInt(row["numberOfRequirements"]),
		SelfSubmissions:      intPtr(rowInt(row["selfSubmissions"])),
		SelfInterviews:       intPtr(rowInt(row["selfInterviews"])),
		SelfPlacements:       intPtr(rowInt(row["selfPlacements"])),
		TeamSubmissions:      intPtr(rowInt(row["teamSubmissions"])),
		TeamInterviews:       intPtr(rowInt(row["teamInterviews"])),
		TeamPlacements:       intPtr(rowInt(row["teamPlacements"])),
	}
}

func intPtr(v int) *int {
	return &v
}
