//go:build unit || e2e

package memuow

import (
	"context"
	"sort"
	"strings"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads serves CommandReads inside a transaction; lockedReads serves them from committed state.
type reads struct{ st *state }

func (r reads) RewardByID(_ context.Context, id uuid.UUID) (*reward.Reward, error) {
	return findReward(r.st, id)
}

func (r reads) RaffleByID(_ context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return findRaffle(r.st, id)
}

func (r reads) RafflesDueForDraw(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	withTickets := map[uuid.UUID]bool{}
	for _, t := range r.st.tickets {
		withTickets[t.RaffleID] = true
	}
	var due []raffle.ReconstructParams
	for _, p := range r.st.raffles {
		if p.IsCompleted || !withTickets[p.ID] {
			continue
		}
		if p.EndDate.Before(now) || p.ClosedAt != nil {
			due = append(due, p)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].EndDate.Before(due[j].EndDate) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	ids := make([]uuid.UUID, 0, len(due))
	for _, p := range due {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r reads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.st.users {
		if strings.EqualFold(u.Email, email) {
			return &shared.UserSnapshot{
				ID:           u.ID,
				Email:        u.Email,
				PasswordHash: u.PasswordHash,
				Role:         u.Role.String(),
				BusinessID:   u.BusinessID,
				IsActive:     u.IsActive,
			}, nil
		}
	}
	return nil, infra.NotFound("user not found")
}

type lockedReads struct{ store *Store }

func (l *lockedReads) RewardByID(ctx context.Context, id uuid.UUID) (out *reward.Reward, err error) {
	l.store.view(func(st *state) { out, err = reads{st}.RewardByID(ctx, id) })
	return
}

func (l *lockedReads) RaffleByID(ctx context.Context, id uuid.UUID) (out *raffle.Raffle, err error) {
	l.store.view(func(st *state) { out, err = reads{st}.RaffleByID(ctx, id) })
	return
}

func (l *lockedReads) RafflesDueForDraw(ctx context.Context, now time.Time, limit int) (out []uuid.UUID, err error) {
	l.store.view(func(st *state) { out, err = reads{st}.RafflesDueForDraw(ctx, now, limit) })
	return
}

func (l *lockedReads) UserByEmail(ctx context.Context, email string) (out *shared.UserSnapshot, err error) {
	l.store.view(func(st *state) { out, err = reads{st}.UserByEmail(ctx, email) })
	return
}

// AccountReads serves the account query side from committed state.
func (s *Store) AccountReads() queries.AccountReadStore {
	return &accountReads{store: s}
}

func (s *Store) UserReads() queries.UserReadStore {
	return &userReads{store: s}
}

type accountReads struct{ store *Store }

type userReads struct{ store *Store }

func (r *accountReads) FindBalance(_ context.Context, customerID, businessID uuid.UUID) (*queries.AccountView, error) {
	var (
		v  *queries.AccountView
		ok bool
	)
	r.store.view(func(st *state) {
		var row AccountRow
		row, ok = st.accounts[ledger.AccountKey{CustomerID: customerID, BusinessID: businessID}]
		if ok {
			v = &queries.AccountView{
				CustomerID:   customerID,
				BusinessID:   businessID,
				BusinessName: st.businesses[businessID],
				Points:       row.Points,
				UpdatedAt:    row.UpdatedAt,
			}
		}
	})
	if !ok {
		return nil, infra.NotFound("account not found")
	}
	return v, nil
}

func (r *accountReads) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*queries.AccountView, error) {
	var out []*queries.AccountView
	r.store.view(func(st *state) {
		for key, row := range st.accounts {
			if key.CustomerID != customerID {
				continue
			}
			out = append(out, &queries.AccountView{
				CustomerID:   key.CustomerID,
				BusinessID:   key.BusinessID,
				BusinessName: st.businesses[key.BusinessID],
				Points:       row.Points,
				UpdatedAt:    row.UpdatedAt,
			})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].BusinessName < out[j].BusinessName })
	return out, nil
}

// ListEntries pages newest first on (created_at, id), matching the SQL keyset.
func (r *accountReads) ListEntries(_ context.Context, customerID, businessID uuid.UUID, after *queries.Position, limit int) ([]*queries.LedgerEntryView, error) {
	var all []*ledger.Entry
	r.store.view(func(st *state) {
		for _, e := range st.entries {
			if e.Key().CustomerID == customerID && e.Key().BusinessID == businessID {
				all = append(all, e)
			}
		}
	})
	sort.Slice(all, func(i, j int) bool { return entryAfter(all[i], all[j].CreatedAt(), all[j].ID()) })

	out := make([]*queries.LedgerEntryView, 0, limit)
	for _, e := range all {
		if after != nil && !entryBefore(e, after.CreatedAt, after.ID) {
			continue
		}
		if len(out) == limit {
			break
		}
		var note *string
		if e.Note() != "" {
			n := e.Note()
			note = &n
		}
		out = append(out, &queries.LedgerEntryView{
			ID:           e.ID(),
			Kind:         e.Kind().String(),
			Delta:        e.Delta(),
			BalanceAfter: e.BalanceAfter(),
			ReferenceID:  e.ReferenceID(),
			Note:         note,
			CreatedAt:    e.CreatedAt(),
		})
	}
	return out, nil
}

func entryAfter(e *ledger.Entry, at time.Time, id uuid.UUID) bool {
	if e.CreatedAt().Equal(at) {
		return e.ID().String() > id.String()
	}
	return e.CreatedAt().After(at)
}

func entryBefore(e *ledger.Entry, at time.Time, id uuid.UUID) bool {
	if e.CreatedAt().Equal(at) {
		return e.ID().String() < id.String()
	}
	return e.CreatedAt().Before(at)
}

func (r *userReads) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		row UserRow
		ok  bool
	)
	r.store.view(func(st *state) { row, ok = st.users[id] })
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &queries.AuthorizedUserView{
		ID:         row.ID,
		Email:      row.Email,
		Role:       row.Role.String(),
		BusinessID: row.BusinessID,
		IsActive:   row.IsActive,
	}, nil
}
