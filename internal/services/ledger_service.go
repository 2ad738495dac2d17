package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/logger"
	"muhasib/internal/models"
	"muhasib/internal/store"
	"muhasib/internal/uuid"
)

// ledgerService owns the in-memory obligation ledger and writes it through
// to the blob store after every mutation. A mutex serializes mutations so
// writes reach the store in invocation order.
type ledgerService struct {
	store store.BlobStore
	mu    sync.Mutex
	data  models.Ledger
}

// NewLedgerService creates a LedgerServicer, loading any persisted ledger.
// A malformed blob is discarded and replaced with an empty ledger rather
// than failing startup.
func NewLedgerService(blobStore store.BlobStore) (LedgerServicer, error) {
	s := &ledgerService{store: blobStore, data: models.NewLedger()}

	raw, found, err := blobStore.Load(store.KeyLedger)
	if err != nil {
		return nil, err
	}
	if found {
		var loaded models.Ledger
		if err := json.Unmarshal(raw, &loaded); err != nil {
			logger.Get().Warnw("discarding malformed ledger blob", "error", err)
		} else {
			if loaded.Payments == nil {
				loaded.Payments = []models.Payment{}
			}
			if loaded.Calculations == nil {
				loaded.Calculations = []models.CalculationSnapshot{}
			}
			s.data = loaded
		}
	}

	return s, nil
}

// persist rewrites the whole ledger blob. Write failures are logged and
// otherwise ignored: the in-memory state is already mutated and the next
// successful write will catch the store up.
func (s *ledgerService) persist() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		logger.Get().Errorw("failed to encode ledger", "error", err)
		return
	}
	if err := s.store.Save(store.KeyLedger, raw); err != nil {
		logger.Get().Warnw("failed to persist ledger", "error", err)
	}
}

// Obligation returns the current computed obligation.
func (s *ledgerService) Obligation() Obligation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Obligation{TotalZakat: s.data.TotalZakat, NetWealth: s.data.NetWealth}
}

// SetObligation overwrites the current obligation with the latest valuation.
func (s *ledgerService) SetObligation(totalZakat, netWealth decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.TotalZakat = totalZakat
	s.data.NetWealth = netWealth
	s.persist()
	return nil
}

// RecordPayment validates and prepends a new payment. The ledger is left
// untouched when validation fails.
func (s *ledgerService) RecordPayment(amount decimal.Decimal, date time.Time, note, currency, currencySymbol string) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Payment amount must be greater than zero")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Payment date is required")
	}

	payment := models.Payment{
		ID:             uuid.New(),
		Amount:         amount,
		Date:           date,
		Note:           note,
		Currency:       currency,
		CurrencySymbol: currencySymbol,
		CreatedAt:      time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Payments = append([]models.Payment{payment}, s.data.Payments...)
	s.persist()
	return &payment, nil
}

// DeletePayment removes the payment with the given id. An unknown id is a
// no-op, not an error: the payment may already be gone.
func (s *ledgerService) DeletePayment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.data.Payments {
		if p.ID == id {
			s.data.Payments = append(s.data.Payments[:i], s.data.Payments[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}

// Payments returns the payment history, newest first.
func (s *ledgerService) Payments() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]models.Payment, len(s.data.Payments))
	copy(payments, s.data.Payments)
	return payments
}

// RecentPayments returns up to n of the most recent payments.
func (s *ledgerService) RecentPayments(n int) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.data.Payments) {
		n = len(s.data.Payments)
	}
	payments := make([]models.Payment, n)
	copy(payments, s.data.Payments[:n])
	return payments
}

// SaveCalculation prepends a snapshot to the history, evicting the oldest
// entry once the cap is exceeded.
func (s *ledgerService) SaveCalculation(snapshot models.CalculationSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Calculations = append([]models.CalculationSnapshot{snapshot}, s.data.Calculations...)
	if len(s.data.Calculations) > models.MaxCalculations {
		s.data.Calculations = s.data.Calculations[:models.MaxCalculations]
	}
	s.persist()
	return nil
}

// Calculations returns the saved calculation history, newest first.
func (s *ledgerService) Calculations() []models.CalculationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	calculations := make([]models.CalculationSnapshot, len(s.data.Calculations))
	copy(calculations, s.data.Calculations)
	return calculations
}

// DeleteCalculation removes the snapshot at the given position, preserving
// the order of the rest.
func (s *ledgerService) DeleteCalculation(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.data.Calculations) {
		return apperrors.ErrIndexOutOfRange
	}
	s.data.Calculations = append(s.data.Calculations[:index], s.data.Calculations[index+1:]...)
	s.persist()
	return nil
}

// Progress derives paid-vs-owed figures against the current obligation.
// Payments are not tied to the calculation that produced the obligation:
// recomputing with different holdings re-bases these figures.
func (s *ledgerService) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalPaid := decimal.Zero
	for _, p := range s.data.Payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	remaining := s.data.TotalZakat.Sub(totalPaid)
	if remaining.IsNegative() {
		// Overpayment is not tracked as a credit.
		remaining = decimal.Zero
	}

	var percent float64
	if s.data.TotalZakat.IsPositive() {
		percent, _ = totalPaid.Div(s.data.TotalZakat).Mul(decimal.NewFromInt(100)).Float64()
	}

	return Progress{
		TotalPaid:    totalPaid,
		Remaining:    remaining,
		Percent:      percent,
		PaymentCount: len(s.data.Payments),
	}
}
