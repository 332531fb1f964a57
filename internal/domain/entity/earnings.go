package entity

// MonthlyEarnings is one aggregation bucket: the sum and count of completed,
// monetarily-valued sessions in a single calendar month. Months with no
// qualifying sessions produce no bucket.
type MonthlyEarnings struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalEarnings float64 `json:"total_earnings"`
	SessionCount  int64   `json:"session_count"`
}
