package dto

// EvaluationReportDTO summarizes one evaluation run in API responses
type EvaluationReportDTO struct {
	OK             bool               `json:"ok"`
	Metrics        map[string]float64 `json:"metrics"`
	RulesEvaluated int                `json:"rules_evaluated"`
	EventsCreated  int                `json:"events_created"`
}
