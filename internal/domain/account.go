// Package domain provides definitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	"minibank/pkg/emailpkg"
	"minibank/pkg/moneypkg"
)

var (
	// ErrInvalidEmail indicates a malformed account identifier.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidAmount indicates a negative, non-finite or over-precise amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrZeroWithdrawal indicates a zero withdrawal amount.
	ErrZeroWithdrawal = errors.New("cannot withdraw zero")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailAlreadyExists indicates that an account with the given email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// IsValidationError reports whether err is an input-shape defect as opposed
// to a state-dependent rule violation such as ErrInsufficientBalance.
// Callers may retry the latter with a different amount.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrZeroWithdrawal)
}

// Account holds a validated email identifier and an exact-decimal balance.
//
// The balance never goes negative and never carries more than two
// fractional digits: every mutation validates its amount first, and adding
// or subtracting two-digit decimals cannot introduce extra precision.
// Account itself is not safe for concurrent use; callers that share one
// across goroutines must serialize access (see accountrepo).
type Account struct {
	email   string
	balance decimal.Decimal
}

// NewAccount validates the identifier and starting balance and returns the
// account. No account exists if either check fails.
func NewAccount(email string, startingBalance decimal.Decimal) (*Account, error) {
	if !emailpkg.IsValid(email) {
		return nil, ErrInvalidEmail
	}

	if !moneypkg.Valid(startingBalance) {
		return nil, ErrInvalidAmount
	}

	return &Account{email: email, balance: startingBalance}, nil
}

// Email returns the immutable account identifier.
func (a *Account) Email() string {
	return a.email
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit adds amount to the balance. A zero deposit succeeds and leaves
// the balance unchanged.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !moneypkg.Valid(amount) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)

	return nil
}

// Withdraw subtracts amount from the balance. Unlike Deposit, a zero
// amount is rejected.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !moneypkg.Valid(amount) {
		return ErrInvalidAmount
	}

	if amount.IsZero() {
		return ErrZeroWithdrawal
	}

	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)

	return nil
}

// TransferTo moves amount from a to target. Either both balances change or
// neither does. A zero transfer succeeds: the transfer debits directly
// instead of going through Withdraw, so the zero-withdrawal rule does not
// apply here.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal) error {
	if !moneypkg.Valid(amount) {
		return ErrInvalidAmount
	}

	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)
	target.balance = target.balance.Add(amount)

	return nil
}

// TransferResult is the post-transfer snapshot of both accounts.
type TransferResult struct {
	From Account
	To   Account
}
