package dtos

type ConfigResponse struct {
	TotalDays int    `json:"total_days"`
	StartDate string `json:"start_date"`
}
