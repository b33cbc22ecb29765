// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"minibank/internal/domain"
)

// entry pairs an account with the lock that serializes its mutations.
// The lock is held across the whole read-check-mutate sequence so the
// balance invariants hold under concurrent callers.
type entry struct {
	mu      sync.Mutex
	account *domain.Account
}

// RepoMem is an in-memory account registry keyed by email.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]*entry
}

// NewRepoMem returns an empty account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]*entry),
	}
}

// Create validates and stores a new account and returns a snapshot of it.
func (r *RepoMem) Create(ctx context.Context, email string, startingBalance decimal.Decimal) (domain.Account, error) {
	account, err := domain.NewAccount(email, startingBalance)
	if err != nil {
		return domain.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[email]; ok {
		return domain.Account{}, domain.ErrEmailAlreadyExists
	}

	r.accounts[email] = &entry{account: account}

	return *account, nil
}

func (r *RepoMem) lookup(email string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return e, nil
}

// Get returns a snapshot of the account with the given email.
func (r *RepoMem) Get(ctx context.Context, email string) (domain.Account, error) {
	e, err := r.lookup(email)
	if err != nil {
		return domain.Account{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return *e.account, nil
}

// Deposit adds amount to the account's balance and returns the changed account.
func (r *RepoMem) Deposit(ctx context.Context, email string, amount decimal.Decimal) (domain.Account, error) {
	e, err := r.lookup(email)
	if err != nil {
		return domain.Account{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.account.Deposit(amount); err != nil {
		return domain.Account{}, err
	}

	return *e.account, nil
}

// Withdraw subtracts amount from the account's balance and returns the
// changed account.
func (r *RepoMem) Withdraw(ctx context.Context, email string, amount decimal.Decimal) (domain.Account, error) {
	e, err := r.lookup(email)
	if err != nil {
		return domain.Account{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.account.Withdraw(amount); err != nil {
		return domain.Account{}, err
	}

	return *e.account, nil
}

// Transfer moves amount between two accounts and returns snapshots of both.
// Both entries stay locked for the duration of the move, so no observer
// sees money leave one account before it arrives at the other.
func (r *RepoMem) Transfer(ctx context.Context, fromEmail, toEmail string, amount decimal.Decimal) (domain.TransferResult, error) {
	from, err := r.lookup(fromEmail)
	if err != nil {
		return domain.TransferResult{}, err
	}

	to, err := r.lookup(toEmail)
	if err != nil {
		return domain.TransferResult{}, err
	}

	// Locks are taken in email order so two opposite transfers between
	// the same pair of accounts cannot deadlock.
	first, second := from, to
	if toEmail < fromEmail {
		first, second = to, from
	}

	first.mu.Lock()
	defer first.mu.Unlock()

	if first != second {
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if err := from.account.TransferTo(to.account, amount); err != nil {
		return domain.TransferResult{}, err
	}

	return domain.TransferResult{From: *from.account, To: *to.account}, nil
}
