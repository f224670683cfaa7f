package domain

import "time"

// Customer is derived from appointments grouped by email
type Customer struct {
	Name              string
	Email             string
	Phone             string
	AppointmentsCount int
	LastAppointment   time.Time
	TotalSpent        float64
}

// DashboardSummary aggregates figures for the admin landing page
type DashboardSummary struct {
	TodayAppointments    int
	PendingAppointments  int
	UpcomingAppointments int // next 7 days, today included
	NewSubmissions       int
	MonthRevenue         float64
}
