package passbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// PassbookStatsResponseBody is the response body for passbook statistics.
type PassbookStatsResponseBody struct {
	TotalPassbooks int64 `json:"total_passbooks" doc:"Number of passbooks across all users"`
}

// PassbookStatsOutput is the Huma output for passbook statistics.
type PassbookStatsOutput struct {
	Body PassbookStatsResponseBody
}

// passbookStatser is the interface for aggregating passbook statistics.
type passbookStatser interface {
	Stats(ctx context.Context) (*service.PassbookStats, error)
}

// PassbookStatsHandler handles GET /v1/passbooks/stats/overview.
type PassbookStatsHandler struct {
	PassbookService passbookStatser
}

// NewPassbookStatsHandler creates a new PassbookStatsHandler.
func NewPassbookStatsHandler(svc passbookStatser) *PassbookStatsHandler {
	return &PassbookStatsHandler{PassbookService: svc}
}

// Register registers the passbook stats endpoint with the Huma API.
func (h *PassbookStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "passbook-stats",
		Method:      http.MethodGet,
		Path:        "/v1/passbooks/stats/overview",
		Summary:     "Passbook statistics",
		Description: "Returns aggregate statistics across all passbooks.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *PassbookStatsHandler) handle(ctx context.Context, _ *struct{}) (*PassbookStatsOutput, error) {
	stats, err := h.PassbookService.Stats(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to aggregate passbook stats", err)
	}

	return &PassbookStatsOutput{Body: PassbookStatsResponseBody{
		TotalPassbooks: stats.TotalPassbooks,
	}}, nil
}
