package models

// BookingMetrics counts bookings per lifecycle state
type BookingMetrics struct {
	Pending   int `json:"pending" db:"pending"`
	Confirmed int `json:"confirmed" db:"confirmed"`
	Cancelled int `json:"cancelled" db:"cancelled"`
	Completed int `json:"completed" db:"completed"`
	Total     int `json:"total" db:"total"`
}

// RevenuePoint is one bucket of the revenue series, split by payment method
type RevenuePoint struct {
	Period        string `json:"period" db:"period"`
	OnlineFull    int    `json:"online_full" db:"online_full"`
	PayAtLocation int    `json:"pay_at_location" db:"pay_at_location"`
	Total         int    `json:"total" db:"total"`
}

// Overview is the admin dashboard aggregate
type Overview struct {
	Metrics        BookingMetrics `json:"metrics"`
	TotalRevenue   int            `json:"total_revenue"`
	RevenueByDay   []RevenuePoint `json:"revenue_by_day"`
	RevenueByMonth []RevenuePoint `json:"revenue_by_month"`
}
