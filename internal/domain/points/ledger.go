package points

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNonPositiveAmount = errors.New("points amount must be positive")

// Ledger keeps a per-user record of EcoPoints earned and spent, with the
// running balance. The one enforced invariant is that the balance never goes
// negative: a spend that would is rejected, not applied.
//
// balance == totalEarned - totalSpent + seed holds after every operation,
// where seed is the starting balance the ledger was created with.
type Ledger struct {
	mu           sync.Mutex
	balance      int64
	transactions []Transaction // newest first
	totalEarned  int64
	totalSpent   int64
}

// Snapshot is the persisted shape of a ledger, keyed per user by the caller.
type Snapshot struct {
	Balance      int64         `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	TotalEarned  int64         `json:"total_earned"`
	TotalSpent   int64         `json:"total_spent"`
}

// NewLedger seeds the balance from the user's externally supplied starting
// points. Zero is a valid seed for a brand-new user.
func NewLedger(startingBalance int64) *Ledger {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &Ledger{balance: startingBalance}
}

func NewLedgerFromSnapshot(snap Snapshot) *Ledger {
	l := &Ledger{
		balance:     snap.Balance,
		totalEarned: snap.TotalEarned,
		totalSpent:  snap.TotalSpent,
	}
	l.transactions = make([]Transaction, len(snap.Transactions))
	copy(l.transactions, snap.Transactions)
	return l
}

// Earn credits points and appends an earned transaction at the head of the
// history. It fails only on a non-positive amount.
func (l *Ledger) Earn(amount int64, description, correlationID string, now time.Time) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	txn := Transaction{
		ID:            uuid.New(),
		Direction:     DirectionEarned,
		Amount:        amount,
		Description:   description,
		CorrelationID: correlationID,
		OccurredAt:    now,
	}
	l.transactions = append([]Transaction{txn}, l.transactions...)
	l.balance += amount
	l.totalEarned += amount
	return txn, nil
}

// Spend debits points if the balance covers the amount. On a short balance
// it reports false and leaves the ledger untouched.
func (l *Ledger) Spend(amount int64, description, correlationID string, now time.Time) (Transaction, bool) {
	if amount <= 0 {
		return Transaction{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance < amount {
		return Transaction{}, false
	}

	txn := Transaction{
		ID:            uuid.New(),
		Direction:     DirectionSpent,
		Amount:        amount,
		Description:   description,
		CorrelationID: correlationID,
		OccurredAt:    now,
	}
	l.transactions = append([]Transaction{txn}, l.transactions...)
	l.balance -= amount
	l.totalSpent += amount
	return txn, true
}

func (l *Ledger) CanAfford(amount int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance >= amount
}

func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *Ledger) TotalEarned() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalEarned
}

func (l *Ledger) TotalSpent() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalSpent
}

// History returns a newest-first copy of the transaction log.
func (l *Ledger) History() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	txns := make([]Transaction, len(l.transactions))
	copy(txns, l.transactions)
	return Snapshot{
		Balance:      l.balance,
		Transactions: txns,
		TotalEarned:  l.totalEarned,
		TotalSpent:   l.totalSpent,
	}
}
