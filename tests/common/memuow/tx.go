//go:build unit || e2e

package memuow

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st *state
}

func (t *memTx) Accounts() shared.AccountRepository           { return accounts{t.st} }
func (t *memTx) Entries() shared.LedgerEntryRepository        { return entries{t.st} }
func (t *memTx) Rewards() shared.RewardRepository             { return rewards{t.st} }
func (t *memTx) Redemptions() shared.RedemptionRepository     { return redemptions{t.st} }
func (t *memTx) Raffles() shared.RaffleRepository             { return raffles{t.st} }
func (t *memTx) Tickets() shared.TicketRepository             { return tickets{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotency{t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return notifications{t.st} }
func (t *memTx) Users() shared.UserRepository                 { return users{t.st} }
func (t *memTx) Reads() shared.CommandReads                   { return reads{t.st} }

type accounts struct{ st *state }

func (a accounts) Credit(_ context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error) {
	if _, ok := a.st.businesses[key.BusinessID]; !ok {
		return 0, errs.ErrBusinessNotFound
	}
	if _, ok := a.st.users[key.CustomerID]; !ok {
		return 0, errs.ErrCustomerNotFound
	}
	row, ok := a.st.accounts[key]
	if !ok {
		row.CreatedAt = now
	}
	row.Points += amount.Value()
	row.UpdatedAt = now
	a.st.accounts[key] = row
	return row.Points, nil
}

func (a accounts) Debit(_ context.Context, key ledger.AccountKey, amount ledger.Points, now time.Time) (int64, error) {
	row, ok := a.st.accounts[key]
	if !ok || row.Points < amount.Value() {
		return 0, errs.ErrInsufficientBalance
	}
	row.Points -= amount.Value()
	row.UpdatedAt = now
	a.st.accounts[key] = row
	return row.Points, nil
}

func (a accounts) Balance(_ context.Context, key ledger.AccountKey) (int64, error) {
	return a.st.accounts[key].Points, nil
}

type entries struct{ st *state }

func (e entries) Append(_ context.Context, entry *ledger.Entry) error {
	if _, ok := e.st.accounts[entry.Key()]; !ok {
		return foreignKeyViolation("failed to append ledger entry")
	}
	e.st.entries = append(e.st.entries, entry)
	return nil
}

type rewards struct{ st *state }

func (r rewards) Create(_ context.Context, rw *reward.Reward) error {
	r.st.rewards[rw.ID()] = rewardRow(rw)
	return nil
}

func (r rewards) UpdateActive(_ context.Context, rw *reward.Reward) error {
	row, ok := r.st.rewards[rw.ID()]
	if !ok {
		return infra.NotFound("reward not found")
	}
	row.IsActive = rw.IsActive()
	row.UpdatedAt = rw.UpdatedAt()
	r.st.rewards[rw.ID()] = row
	return nil
}

func (r rewards) FindByID(_ context.Context, id uuid.UUID) (*reward.Reward, error) {
	return findReward(r.st, id)
}

func findReward(st *state, id uuid.UUID) (*reward.Reward, error) {
	row, ok := st.rewards[id]
	if !ok {
		return nil, infra.NotFound("reward not found")
	}
	return reward.ReconstructReward(row.ID, row.BusinessID, row.Name, row.Description, row.PointsRequired, row.IsActive, row.CreatedAt, row.UpdatedAt)
}

type redemptions struct{ st *state }

func (r redemptions) Create(_ context.Context, rd *redemption.Redemption) error {
	key := ledger.AccountKey{CustomerID: rd.CustomerID(), BusinessID: rd.BusinessID()}
	if _, ok := r.st.accounts[key]; !ok {
		return foreignKeyViolation("failed to create redemption")
	}
	r.st.redemptions = append(r.st.redemptions, rd)
	return nil
}

type raffles struct{ st *state }

func (r raffles) Create(_ context.Context, rf *raffle.Raffle) error {
	r.st.raffles[rf.ID()] = raffleParams(rf)
	return nil
}

func (r raffles) FindForUpdate(_ context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return findRaffle(r.st, id)
}

func (r raffles) MarkClosed(_ context.Context, rf *raffle.Raffle) error {
	p, ok := r.st.raffles[rf.ID()]
	if !ok || rf.ClosedAt() == nil || p.ClosedAt != nil || p.IsCompleted {
		return nil
	}
	p.ClosedAt = rf.ClosedAt()
	p.UpdatedAt = *rf.ClosedAt()
	r.st.raffles[rf.ID()] = p
	return nil
}

func (r raffles) Complete(_ context.Context, rf *raffle.Raffle) error {
	p, ok := r.st.raffles[rf.ID()]
	if !ok || p.IsCompleted {
		return errs.ErrAlreadyCompleted
	}
	p.WinnerCustomerID = rf.WinnerCustomerID()
	p.WinningTicketID = rf.WinningTicketID()
	p.IsCompleted = true
	if p.ClosedAt == nil {
		p.ClosedAt = rf.ClosedAt()
	}
	p.UpdatedAt = rf.UpdatedAt()
	r.st.raffles[rf.ID()] = p
	return nil
}

func findRaffle(st *state, id uuid.UUID) (*raffle.Raffle, error) {
	p, ok := st.raffles[id]
	if !ok {
		return nil, infra.NotFound("raffle not found")
	}
	return raffle.ReconstructRaffle(p)
}

type tickets struct{ st *state }

func (t tickets) Create(_ context.Context, tk *raffle.Ticket) error {
	key := ledger.AccountKey{CustomerID: tk.CustomerID(), BusinessID: tk.BusinessID()}
	if _, ok := t.st.accounts[key]; !ok {
		return foreignKeyViolation("failed to create ticket")
	}
	t.st.tickets = append(t.st.tickets, TicketRow{
		ID:          tk.ID(),
		RaffleID:    tk.RaffleID(),
		CustomerID:  tk.CustomerID(),
		BusinessID:  tk.BusinessID(),
		PointsSpent: tk.PointsSpent(),
		CreatedAt:   tk.CreatedAt(),
	})
	return nil
}

func (t tickets) CountByCustomer(_ context.Context, raffleID, customerID uuid.UUID) (int, error) {
	n := 0
	for _, row := range t.st.tickets {
		if row.RaffleID == raffleID && row.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (t tickets) ListByRaffle(_ context.Context, raffleID uuid.UUID) ([]*raffle.Ticket, error) {
	var rows []TicketRow
	for _, row := range t.st.tickets {
		if row.RaffleID == raffleID {
			rows = append(rows, row)
		}
	}
	sortTickets(rows)
	return toTickets(rows), nil
}

func (t tickets) DeleteByCustomer(_ context.Context, raffleID, customerID uuid.UUID) ([]*raffle.Ticket, error) {
	var removed, kept []TicketRow
	for _, row := range t.st.tickets {
		if row.RaffleID == raffleID && row.CustomerID == customerID {
			removed = append(removed, row)
		} else {
			kept = append(kept, row)
		}
	}
	t.st.tickets = kept
	return toTickets(removed), nil
}

func toTickets(rows []TicketRow) []*raffle.Ticket {
	out := make([]*raffle.Ticket, 0, len(rows))
	for _, r := range rows {
		out = append(out, raffle.ReconstructTicket(r.ID, r.RaffleID, r.CustomerID, r.BusinessID, r.PointsSpent, r.CreatedAt))
	}
	return out
}

type idempotency struct{ st *state }

func (i idempotency) TryInsert(_ context.Context, rec shared.IdempotencyRecord) (bool, error) {
	k := idemKey{key: rec.Key, userID: rec.UserID}
	if _, ok := i.st.idempotency[k]; ok {
		return false, nil
	}
	i.st.idempotency[k] = rec
	return true, nil
}

func (i idempotency) Get(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := i.st.idempotency[idemKey{key: key, userID: userID}]
	if !ok {
		return nil, infra.NotFound("idempotency key not found")
	}
	return &rec, nil
}

func (i idempotency) MarkCompleted(_ context.Context, key, userID uuid.UUID, result []byte) error {
	k := idemKey{key: key, userID: userID}
	rec, ok := i.st.idempotency[k]
	if !ok {
		return infra.NotFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.Result = append([]byte(nil), result...)
	i.st.idempotency[k] = rec
	return nil
}

func (i idempotency) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, rec := range i.st.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(i.st.idempotency, k)
			n++
		}
	}
	return n, nil
}

type notifications struct{ st *state }

func (n notifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	n.st.jobs = append(n.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type users struct{ st *state }

func (u users) Create(_ context.Context, usr *user.User) error {
	u.st.users[usr.ID()] = UserRow{
		ID:           usr.ID(),
		Email:        usr.Email().Value(),
		PasswordHash: usr.PasswordHash(),
		Role:         usr.Role(),
		BusinessID:   usr.BusinessID(),
		IsActive:     usr.IsActive(),
	}
	return nil
}

func (u users) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	row, ok := u.st.users[userID]
	if !ok {
		return infra.NotFound("user not found")
	}
	row.LastLogin = &at
	u.st.users[userID] = row
	return nil
}
