//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for use case tests.
// Within runs one transaction at a time on a copy of the state and publishes the copy on success,
// which gives the same all-or-nothing and serialized-per-row outcomes as the Postgres implementation.
package memuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	BusinessID   *uuid.UUID
	IsActive     bool
	LastLogin    *time.Time
}

type AccountRow struct {
	Points    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RewardRow struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Name           string
	Description    string
	PointsRequired int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TicketRow struct {
	ID          uuid.UUID
	RaffleID    uuid.UUID
	CustomerID  uuid.UUID
	BusinessID  uuid.UUID
	PointsSpent int64
	CreatedAt   time.Time
}

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	businesses  map[uuid.UUID]string
	users       map[uuid.UUID]UserRow
	accounts    map[ledger.AccountKey]AccountRow
	entries     []*ledger.Entry
	rewards     map[uuid.UUID]RewardRow
	redemptions []*redemption.Redemption
	raffles     map[uuid.UUID]raffle.ReconstructParams
	tickets     []TicketRow
	idempotency map[idemKey]shared.IdempotencyRecord
	jobs        []Job
}

func newState() *state {
	return &state{
		businesses:  map[uuid.UUID]string{},
		users:       map[uuid.UUID]UserRow{},
		accounts:    map[ledger.AccountKey]AccountRow{},
		rewards:     map[uuid.UUID]RewardRow{},
		raffles:     map[uuid.UUID]raffle.ReconstructParams{},
		idempotency: map[idemKey]shared.IdempotencyRecord{},
	}
}

// clone copies every container; row values are immutable once stored.
func (s *state) clone() *state {
	c := &state{
		businesses:  make(map[uuid.UUID]string, len(s.businesses)),
		users:       make(map[uuid.UUID]UserRow, len(s.users)),
		accounts:    make(map[ledger.AccountKey]AccountRow, len(s.accounts)),
		entries:     append([]*ledger.Entry(nil), s.entries...),
		rewards:     make(map[uuid.UUID]RewardRow, len(s.rewards)),
		redemptions: append([]*redemption.Redemption(nil), s.redemptions...),
		raffles:     make(map[uuid.UUID]raffle.ReconstructParams, len(s.raffles)),
		tickets:     append([]TicketRow(nil), s.tickets...),
		idempotency: make(map[idemKey]shared.IdempotencyRecord, len(s.idempotency)),
		jobs:        append([]Job(nil), s.jobs...),
	}
	for k, v := range s.businesses {
		c.businesses[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.rewards {
		c.rewards[k] = v
	}
	for k, v := range s.raffles {
		c.raffles[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	state *state

	// FailWith, when set, is returned by Within before fn runs.
	FailWith error
}

func New() *Store {
	return &Store{state: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// view runs f against the committed state.
func (s *Store) view(f func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.state)
}

func (s *Store) AddBusiness(name string) uuid.UUID {
	id := uuid.New()
	s.view(func(st *state) { st.businesses[id] = name })
	return id
}

func (s *Store) AddUser(row UserRow) uuid.UUID {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	s.view(func(st *state) { st.users[row.ID] = row })
	return row.ID
}

func (s *Store) AddCustomer() uuid.UUID {
	id := uuid.New()
	return s.AddUser(UserRow{ID: id, Email: id.String() + "@example.com", Role: user.RoleCustomer, IsActive: true})
}

// SetBalance writes the balance directly, bypassing the journal.
func (s *Store) SetBalance(customerID, businessID uuid.UUID, points int64) {
	s.view(func(st *state) {
		key := ledger.AccountKey{CustomerID: customerID, BusinessID: businessID}
		row := st.accounts[key]
		row.Points = points
		st.accounts[key] = row
	})
}

func (s *Store) Balance(customerID, businessID uuid.UUID) int64 {
	var points int64
	s.view(func(st *state) {
		points = st.accounts[ledger.AccountKey{CustomerID: customerID, BusinessID: businessID}].Points
	})
	return points
}

func (s *Store) Entries(customerID, businessID uuid.UUID) []*ledger.Entry {
	var out []*ledger.Entry
	s.view(func(st *state) {
		for _, e := range st.entries {
			if e.Key().CustomerID == customerID && e.Key().BusinessID == businessID {
				out = append(out, e)
			}
		}
	})
	return out
}

func (s *Store) Tickets(raffleID uuid.UUID) []TicketRow {
	var out []TicketRow
	s.view(func(st *state) {
		for _, t := range st.tickets {
			if t.RaffleID == raffleID {
				out = append(out, t)
			}
		}
	})
	return out
}

func (s *Store) Redemptions() []*redemption.Redemption {
	var out []*redemption.Redemption
	s.view(func(st *state) { out = append(out, st.redemptions...) })
	return out
}

func (s *Store) Jobs() []Job {
	var out []Job
	s.view(func(st *state) { out = append(out, st.jobs...) })
	return out
}

func (s *Store) IdempotencyRecords() int {
	var n int
	s.view(func(st *state) { n = len(st.idempotency) })
	return n
}

func (s *Store) User(id uuid.UUID) (UserRow, bool) {
	var (
		row UserRow
		ok  bool
	)
	s.view(func(st *state) { row, ok = st.users[id] })
	return row, ok
}

// SaveRaffle stores r as-is, which lets tests seed raffles in any state.
func (s *Store) SaveRaffle(r *raffle.Raffle) {
	s.view(func(st *state) { st.raffles[r.ID()] = raffleParams(r) })
}

func (s *Store) Raffle(id uuid.UUID) (*raffle.Raffle, bool) {
	var (
		p  raffle.ReconstructParams
		ok bool
	)
	s.view(func(st *state) { p, ok = st.raffles[id] })
	if !ok {
		return nil, false
	}
	r, err := raffle.ReconstructRaffle(p)
	return r, err == nil
}

func (s *Store) SaveReward(r *reward.Reward) {
	s.view(func(st *state) { st.rewards[r.ID()] = rewardRow(r) })
}

func raffleParams(r *raffle.Raffle) raffle.ReconstructParams {
	return raffle.ReconstructParams{
		ID:                r.ID(),
		BusinessID:        r.BusinessID(),
		Title:             r.Title(),
		Description:       r.Description(),
		PointsRequired:    r.PointsRequired().Value(),
		MaxTicketsPerUser: r.MaxTicketsPerUser(),
		StartDate:         r.StartDate(),
		EndDate:           r.EndDate(),
		ClosedAt:          r.ClosedAt(),
		WinnerCustomerID:  r.WinnerCustomerID(),
		WinningTicketID:   r.WinningTicketID(),
		IsCompleted:       r.IsCompleted(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func rewardRow(r *reward.Reward) RewardRow {
	return RewardRow{
		ID:             r.ID(),
		BusinessID:     r.BusinessID(),
		Name:           r.Name(),
		Description:    r.Description(),
		PointsRequired: r.PointsRequired().Value(),
		IsActive:       r.IsActive(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func foreignKeyViolation(msg string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{Code: "23503", Message: msg})
}

func sortTickets(ts []TicketRow) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].CreatedAt.Equal(ts[j].CreatedAt) {
			return ts[i].ID.String() < ts[j].ID.String()
		}
		return ts[i].CreatedAt.Before(ts[j].CreatedAt)
	})
}
