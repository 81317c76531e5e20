package response_models

// ClimateReport is the dashboard read model for one tenant and window.
// Everything is recomputed from stored responses on each build; the
// redis layer in front of it only caches the finished report.
type ClimateReport struct {
	WindowDays        int     `json:"window_days"`
	TotalEmployees    int64   `json:"total_employees"`
	ParticipantCount  int64   `json:"participant_count"`
	ParticipationRate float64 `json:"participation_rate"`
	NPS               float64 `json:"nps"`
	Satisfaction      float64 `json:"satisfaction"`
}
