package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	PassbookID  int64   `json:"passbook_id" required:"true" doc:"Passbook the transaction belongs to"`
	TxnType     string  `json:"txn_type" required:"true" enum:"debit,credit" doc:"Either debit or credit"`
	Amount      string  `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
	TxnDate     string  `json:"txn_date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	ReferenceNo *string `json:"reference_no,omitempty" maxLength:"100" doc:"External reference number"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	Body          CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, userID int64, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Identity           identityResolver
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(identity identityResolver, svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Identity: identity, TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions",
		Summary:     "Create a transaction",
		Description: "Creates a new transaction in one of the calling user's passbooks.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, err
	}

	var txnDate time.Time
	if input.Body.TxnDate != "" {
		txnDate, err = time.Parse(time.RFC3339, input.Body.TxnDate)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid txn_date", err)
		}
	}

	return service.TransactionCreate{
		PassbookID:  input.Body.PassbookID,
		TxnType:     input.Body.TxnType,
		Amount:      amount,
		Description: input.Body.Description,
		TxnDate:     txnDate,
		ReferenceNo: input.Body.ReferenceNo,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.Create(ctx, caller.ID, create)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("passbook not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   toAPITransaction(*created),
	}, nil
}
