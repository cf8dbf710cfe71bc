package dto

// StatsResponse is the dashboard summary.
type StatsResponse struct {
	Advertisers     int64 `json:"advertisers"`
	Ads             int64 `json:"ads"`
	ActiveContracts int64 `json:"active_contracts"`
	TotalViews      int64 `json:"total_views"`
}
