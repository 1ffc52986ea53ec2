package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// BusinessStatsResponseBody is the response body for business statistics.
// Counts and averages are zero and industries is empty when no businesses exist.
type BusinessStatsResponseBody struct {
	TotalBusinesses int64    `json:"total_businesses" doc:"Number of businesses across all users"`
	TotalEmployees  int64    `json:"total_employees" doc:"Sum of employee counts"`
	AverageRevenue  float64  `json:"average_revenue" doc:"Mean annual revenue"`
	Industries      []string `json:"industries" doc:"Distinct industry labels"`
}

// BusinessStatsOutput is the Huma output for business statistics.
type BusinessStatsOutput struct {
	Body BusinessStatsResponseBody
}

// businessStatser is the interface for aggregating business statistics.
type businessStatser interface {
	Stats(ctx context.Context) (*service.BusinessStats, error)
}

// BusinessStatsHandler handles GET /v1/businesses/stats/overview.
type BusinessStatsHandler struct {
	BusinessService businessStatser
}

// NewBusinessStatsHandler creates a new BusinessStatsHandler.
func NewBusinessStatsHandler(svc businessStatser) *BusinessStatsHandler {
	return &BusinessStatsHandler{BusinessService: svc}
}

// Register registers the business stats endpoint with the Huma API.
func (h *BusinessStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "business-stats",
		Method:      http.MethodGet,
		Path:        "/v1/businesses/stats/overview",
		Summary:     "Business statistics",
		Description: "Returns aggregate statistics across all businesses.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *BusinessStatsHandler) handle(ctx context.Context, _ *struct{}) (*BusinessStatsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("businessStatsMs")
	}
	stats, err := h.BusinessService.Stats(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to aggregate business stats", err)
	}

	return &BusinessStatsOutput{Body: BusinessStatsResponseBody{
		TotalBusinesses: stats.TotalBusinesses,
		TotalEmployees:  stats.TotalEmployees,
		AverageRevenue:  stats.AverageRevenue,
		Industries:      stats.Industries,
	}}, nil
}
