package dto

// MonthlyEarningsResponse is one month's bucket in the earnings summary.
type MonthlyEarningsResponse struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalEarnings float64 `json:"total_earnings"`
	SessionCount  int64   `json:"session_count"`
}

type MonthlySummaryResponse struct {
	Months []MonthlyEarningsResponse `json:"months"`
	Total  int                       `json:"total"`
}

// MonthlyDetailResponse is the flat, sorted view of a single month.
type MonthlyDetailResponse struct {
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	TotalEarnings float64           `json:"total_earnings"`
	SessionCount  int               `json:"session_count"`
	Sessions      []SessionResponse `json:"sessions"`
}
