package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/catalog"
	"github.com/iliyamo/f1-ticket-booking/internal/model"
)

// Memory is the non-durable backend: all state lives in process memory
// and is rebuilt from the seed catalog on every start. A single mutex
// spans accounts, areas, tickets and tokens, which is what makes the
// booking effect atomic — no reader can observe a debited wallet without
// the matching ticket and sold-count.
type Memory struct {
	mu sync.Mutex

	accounts map[uint64]*model.Account
	byEmail  map[string]uint64
	nextAcct uint64

	events []model.Event
	areas  map[uint64]*model.SeatingArea
	// areaOrder preserves seed order for AreasByEvent listings.
	areaOrder []uint64

	tickets []model.Ticket

	tokens map[string]*model.RefreshToken
	nextTk uint64
}

// NewMemory builds a Memory store seeded with the given catalog. Event
// and area IDs are assigned in seed order starting at 1.
func NewMemory(seed []catalog.Event) *Memory {
	m := &Memory{
		accounts: make(map[uint64]*model.Account),
		byEmail:  make(map[string]uint64),
		areas:    make(map[uint64]*model.SeatingArea),
		tokens:   make(map[string]*model.RefreshToken),
	}
	var areaID uint64
	for i, ev := range seed {
		eventID := uint64(i + 1)
		m.events = append(m.events, model.Event{
			ID:        eventID,
			Name:      ev.Name,
			Country:   ev.Country,
			RaceDate:  ev.RaceDate,
			ImagePath: ev.ImagePath,
		})
		for _, a := range ev.Areas {
			areaID++
			m.areas[areaID] = &model.SeatingArea{
				ID:        areaID,
				EventID:   eventID,
				EventName: ev.Name,
				RaceDate:  ev.RaceDate,
				Name:      a.Name,
				PriceINR:  decimal.NewFromInt(a.PriceINR),
				Capacity:  a.Capacity,
			}
			m.areaOrder = append(m.areaOrder, areaID)
		}
	}
	return m
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new account with the opening wallet balance.
func (m *Memory) CreateAccount(ctx context.Context, name, email, passwordHash string, openingUSD decimal.Decimal) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = normalizeEmail(email)
	if _, ok := m.byEmail[email]; ok {
		return model.Account{}, ErrEmailExists
	}
	m.nextAcct++
	now := time.Now().UTC()
	acct := &model.Account{
		ID:           m.nextAcct,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		WalletUSD:    openingUSD,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.accounts[acct.ID] = acct
	m.byEmail[email] = acct.ID
	return *acct, nil
}

func (m *Memory) AccountByEmail(ctx context.Context, email string) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[normalizeEmail(email)]
	if !ok {
		return model.Account{}, ErrNotFound
	}
	return *m.accounts[id], nil
}

func (m *Memory) AccountByID(ctx context.Context, id uint64) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.accounts[id]
	if !ok {
		return model.Account{}, ErrNotFound
	}
	return *acct, nil
}

func (m *Memory) Events(ctx context.Context) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *Memory) AreasByEvent(ctx context.Context, eventID uint64) ([]model.SeatingArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for _, ev := range m.events {
		if ev.ID == eventID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	out := make([]model.SeatingArea, 0)
	for _, id := range m.areaOrder {
		if a := m.areas[id]; a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *Memory) AreaByID(ctx context.Context, id uint64) (model.SeatingArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.areas[id]
	if !ok {
		return model.SeatingArea{}, ErrNotFound
	}
	return *a, nil
}

// TicketsByAccount returns the account's tickets in booking order.
func (m *Memory) TicketsByAccount(ctx context.Context, accountID uint64) ([]model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Ticket, 0)
	for _, t := range m.tickets {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Memory) StoreRefresh(ctx context.Context, accountID uint64, tokenHash string, exp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTk++
	m.tokens[tokenHash] = &model.RefreshToken{
		ID:        m.nextTk,
		AccountID: accountID,
		TokenHash: tokenHash,
		ExpiresAt: exp,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (m *Memory) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tk, ok := m.tokens[tokenHash]
	if !ok || tk.RevokedAt != nil || time.Now().UTC().After(tk.ExpiresAt) {
		return 0, ErrNotFound
	}
	return tk.AccountID, nil
}

func (m *Memory) RevokeByHash(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tk, ok := m.tokens[tokenHash]; ok && tk.RevokedAt == nil {
		now := time.Now().UTC()
		tk.RevokedAt = &now
	}
	return nil
}

func (m *Memory) RevokeAllForAccount(ctx context.Context, accountID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for _, tk := range m.tokens {
		if tk.AccountID == accountID && tk.RevokedAt == nil {
			t := now
			tk.RevokedAt = &t
		}
	}
	return nil
}

// memTx stages mutations while the store mutex is held; they are applied
// only if fn returns nil, so a failed booking leaves no trace.
type memTx struct {
	m       *Memory
	debits  []memDebit
	sold    []memSold
	tickets []model.Ticket
}

type memDebit struct {
	accountID uint64
	amount    decimal.Decimal
}

type memSold struct {
	areaID   uint64
	quantity int
}

func (tx *memTx) AreaForUpdate(ctx context.Context, areaID uint64) (model.SeatingArea, error) {
	a, ok := tx.m.areas[areaID]
	if !ok {
		return model.SeatingArea{}, ErrNotFound
	}
	return *a, nil
}

func (tx *memTx) AccountForUpdate(ctx context.Context, accountID uint64) (model.Account, error) {
	acct, ok := tx.m.accounts[accountID]
	if !ok {
		return model.Account{}, ErrNotFound
	}
	return *acct, nil
}

func (tx *memTx) DebitWallet(ctx context.Context, accountID uint64, amountUSD decimal.Decimal) error {
	if _, ok := tx.m.accounts[accountID]; !ok {
		return ErrNotFound
	}
	tx.debits = append(tx.debits, memDebit{accountID, amountUSD})
	return nil
}

func (tx *memTx) AddSold(ctx context.Context, areaID uint64, quantity int) error {
	if _, ok := tx.m.areas[areaID]; !ok {
		return ErrNotFound
	}
	tx.sold = append(tx.sold, memSold{areaID, quantity})
	return nil
}

func (tx *memTx) InsertTicket(ctx context.Context, t model.Ticket) error {
	tx.tickets = append(tx.tickets, t)
	return nil
}

// InBookingTx runs fn under the store mutex. Staged mutations are applied
// only on success; any error from fn is returned unchanged and nothing is
// applied.
func (m *Memory) InBookingTx(ctx context.Context, fn func(tx BookingTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m}
	if err := fn(tx); err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, d := range tx.debits {
		acct := m.accounts[d.accountID]
		acct.WalletUSD = acct.WalletUSD.Sub(d.amount)
		acct.UpdatedAt = now
	}
	for _, s := range tx.sold {
		m.areas[s.areaID].Sold += s.quantity
	}
	m.tickets = append(m.tickets, tx.tickets...)
	return nil
}

// Retryable always reports false: the mutex serializes bookings, so there
// are no transient commit conflicts in this backend.
func (m *Memory) Retryable(err error) bool { return false }
