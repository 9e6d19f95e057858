package dashboard

import "time"

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the manager dashboard endpoint
type DashboardResponse struct {
	Summary DailySnapshot `json:"summary"`
	Weekly  WeeklyTrend   `json:"weekly"`
}

// ========== DAILY SNAPSHOT ==========

// DailySnapshot partitions the roster into present/absent/late for one day
type DailySnapshot struct {
	Date            string           `json:"date"` // Format: "YYYY-MM-DD"
	TotalEmployees  int              `json:"total_employees"`
	Present         int              `json:"present"`
	Absent          int              `json:"absent"`
	LateCount       int              `json:"late_count"`
	LateEmployees   []LateEmployee   `json:"late_employees"`
	AbsentEmployees []EmployeeRef    `json:"absent_employees"`
	DepartmentStats []DepartmentStat `json:"department_stats"`
}

type EmployeeRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

type LateEmployee struct {
	EmployeeRef
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
	Status      string     `json:"status"`
}

type DepartmentStat struct {
	Department     string `json:"department"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	Absent         int    `json:"absent"`
}

// ========== WEEKLY TREND ==========

// WeeklyTrend holds the trailing seven days, oldest first
type WeeklyTrend struct {
	TotalEmployees int        `json:"total_employees"` // denominator for every day
	Days           []TrendDay `json:"days"`
}

type TrendDay struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}
