package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// TransactionStatsResponseBody is the response body for transaction statistics.
type TransactionStatsResponseBody struct {
	TotalTransactions int64 `json:"total_transactions" doc:"Number of transactions across all passbooks"`
}

// TransactionStatsOutput is the Huma output for transaction statistics.
type TransactionStatsOutput struct {
	Body TransactionStatsResponseBody
}

// transactionStatser is the interface for aggregating transaction statistics.
type transactionStatser interface {
	Stats(ctx context.Context) (*service.TransactionStats, error)
}

// TransactionStatsHandler handles GET /v1/transactions/stats/overview.
type TransactionStatsHandler struct {
	TransactionService transactionStatser
}

// NewTransactionStatsHandler creates a new TransactionStatsHandler.
func NewTransactionStatsHandler(svc transactionStatser) *TransactionStatsHandler {
	return &TransactionStatsHandler{TransactionService: svc}
}

// Register registers the transaction stats endpoint with the Huma API.
func (h *TransactionStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-stats",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/stats/overview",
		Summary:     "Transaction statistics",
		Description: "Returns aggregate statistics across all transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransactionStatsHandler) handle(ctx context.Context, _ *struct{}) (*TransactionStatsOutput, error) {
	stats, err := h.TransactionService.Stats(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to aggregate transaction stats", err)
	}

	return &TransactionStatsOutput{Body: TransactionStatsResponseBody{
		TotalTransactions: stats.TotalTransactions,
	}}, nil
}
