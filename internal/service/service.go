package service

import (
	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Business    *BusinessService
	Passbook    *PassbookService
	Transaction *TransactionService
	User        *UserService
}

// NewService creates a new Service with the given storage and token manager.
func NewService(store *storage.Storage, tokens *auth.TokenManager) *Service {
	return &Service{
		Business:    NewBusinessService(store),
		Passbook:    NewPassbookService(store),
		Transaction: NewTransactionService(store),
		User:        NewUserService(store, tokens),
	}
}
