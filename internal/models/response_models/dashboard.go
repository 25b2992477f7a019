package response_models

type DashboardSummary struct {
	TotalTrips    int64  `json:"totalTrips"`
	TotalBudget   string `json:"totalBudget"`
	UpcomingTrips int64  `json:"upcomingTrips"`
}

type DashboardResponse struct {
	Summary     DashboardSummary `json:"summary"`
	RecentTrips []TripResponse   `json:"recentTrips"`
}
