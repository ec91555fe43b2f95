package client

import "context"

// EvaluationService triggers evaluation runs
type EvaluationService struct {
	client *Client
}

// Run triggers a full evaluation cycle for the caller's tenant
func (s *EvaluationService) Run(ctx context.Context) (*EvaluationReport, error) {
	var report EvaluationReport
	if err := s.client.doRequest(ctx, "POST", "/api/evaluate", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
