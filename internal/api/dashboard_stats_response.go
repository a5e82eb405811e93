package api

// DashboardStats aggregates the admin dashboard counters. TotalUsers is the
// sum of the per-role active counts. ActiveBatches is a static placeholder:
// no batch entity exists yet.
// swagger:model api.DashboardStats
type DashboardStats struct {
	TotalStudents   int `json:"totalStudents" example:"12"`
	TotalFaculty    int `json:"totalFaculty" example:"4"`
	TotalHR         int `json:"totalHR" example:"2"`
	PendingRequests int `json:"pendingRequests" example:"3"`
	ActiveBatches   int `json:"activeBatches" example:"15"`
	TotalUsers      int `json:"totalUsers" example:"18"`
}
