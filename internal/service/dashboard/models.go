package dashboard

// SummaryResponse сводка для главной страницы админки
type SummaryResponse struct {
	Date                 string  `json:"date"`
	TodayAppointments    int     `json:"todayAppointments"`
	PendingAppointments  int     `json:"pendingAppointments"`
	UpcomingAppointments int     `json:"upcomingAppointments"`
	NewSubmissions       int     `json:"newSubmissions"`
	MonthRevenue         float64 `json:"monthRevenue"`
}
