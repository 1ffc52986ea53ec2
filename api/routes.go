package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/business"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/passbook"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/status"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/user"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	DB      *sql.DB
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("cashbook-server", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	r.registerHandlers(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(api huma.API) {
	identity := r.Service.User

	business.NewCreateBusinessHandler(identity, r.Service.Business).Register(api)
	business.NewListBusinessesHandler(identity, r.Service.Business).Register(api)
	business.NewGetBusinessHandler(identity, r.Service.Business).Register(api)
	business.NewUpdateBusinessHandler(identity, r.Service.Business).Register(api)
	business.NewPatchBusinessHandler(identity, r.Service.Business).Register(api)
	business.NewDeleteBusinessHandler(identity, r.Service.Business).Register(api)
	business.NewBusinessStatsHandler(r.Service.Business).Register(api)

	passbook.NewCreatePassbookHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewListPassbooksHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewGetPassbookHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewUpdatePassbookHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewPatchPassbookHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewDeletePassbookHandler(identity, r.Service.Passbook).Register(api)
	passbook.NewPassbookStatsHandler(r.Service.Passbook).Register(api)

	transaction.NewCreateTransactionHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewPatchTransactionHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(identity, r.Service.Transaction).Register(api)
	transaction.NewTransactionStatsHandler(r.Service.Transaction).Register(api)

	user.NewRegisterHandler(r.Service.User).Register(api)
	user.NewLoginHandler(r.Service.User).Register(api)
	user.NewListUsersHandler(r.Service.User).Register(api)
	user.NewGetUserHandler(r.Service.User).Register(api)
	user.NewUpdateUserHandler(r.Service.User).Register(api)
}
