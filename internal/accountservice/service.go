// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"minibank/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(ctx context.Context, email string, startingBalance decimal.Decimal) (domain.Account, error)
	Get(ctx context.Context, email string) (domain.Account, error)
	Deposit(ctx context.Context, email string, amount decimal.Decimal) (domain.Account, error)
	Withdraw(ctx context.Context, email string, amount decimal.Decimal) (domain.Account, error)
	Transfer(ctx context.Context, fromEmail, toEmail string, amount decimal.Decimal) (domain.TransferResult, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// parseAmount converts the textual form of an amount to an exact decimal.
// Parsing from the base-10 text keeps binary-float artifacts out of the
// precision checks downstream.
func (s *Service) parseAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	return amountDecimal, nil
}

// Create opens an account with the given email and starting balance.
func (s *Service) Create(ctx context.Context, email, startingBalance string) (domain.Account, error) {
	balance, err := s.parseAmount(ctx, startingBalance)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.Create(ctx, email, balance)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Get returns the account with the given email.
func (s *Service) Get(ctx context.Context, email string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Deposit adds the amount to the account's balance.
func (s *Service) Deposit(ctx context.Context, email, amount string) (domain.Account, error) {
	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.Deposit(ctx, email, amountDecimal)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Withdraw subtracts the amount from the account's balance.
func (s *Service) Withdraw(ctx context.Context, email, amount string) (domain.Account, error) {
	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.Withdraw(ctx, email, amountDecimal)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Transfer moves the amount between two accounts.
func (s *Service) Transfer(ctx context.Context, fromEmail, toEmail, amount string) (domain.TransferResult, error) {
	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	result, err := s.repo.Transfer(ctx, fromEmail, toEmail, amountDecimal)
	if err != nil {
		return domain.TransferResult{}, err
	}

	return result, nil
}
