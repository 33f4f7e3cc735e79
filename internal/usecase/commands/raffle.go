package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/raffle"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const EndpointBuyTicket = "POST /raffles/:id/tickets"

type CreateRaffleRequest struct {
	BusinessID        uuid.UUID
	Title             string
	Description       string
	PointsRequired    int64
	MaxTicketsPerUser int
	StartDate         time.Time
	EndDate           time.Time
}

type CreateRaffleResult struct {
	RaffleID uuid.UUID
}

type BuyTicketResult struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	RaffleID    uuid.UUID `json:"raffle_id"`
	PointsSpent int64     `json:"points_spent"`
	NewBalance  int64     `json:"new_balance"`
	IsReplayed  bool      `json:"-"`
}

type ReturnTicketsResult struct {
	RaffleID        uuid.UUID
	ReturnedTickets int
	CreditedPoints  int64
	NewBalance      int64
}

type DrawResult struct {
	RaffleID         uuid.UUID `json:"raffle_id"`
	WinnerCustomerID uuid.UUID `json:"winner_customer_id"`
	WinningTicketID  uuid.UUID `json:"winning_ticket_id"`
	TotalTickets     int       `json:"total_tickets"`
}

type RaffleCommands interface {
	CreateRaffle(ctx context.Context, actor shared.Actor, req CreateRaffleRequest) (*CreateRaffleResult, error)
	BuyTicket(ctx context.Context, customerID, raffleID uuid.UUID, key *IdempotencyKey) (*BuyTicketResult, error)
	// ReturnTickets refunds every ticket the customer holds. Holding none is not an error.
	ReturnTickets(ctx context.Context, customerID, raffleID uuid.UUID) (*ReturnTicketsResult, error)
	CloseRaffle(ctx context.Context, actor shared.Actor, raffleID uuid.UUID) error
	SelectWinner(ctx context.Context, actor shared.Actor, raffleID uuid.UUID) (*DrawResult, error)
	// DrawDue completes up to limit raffles whose sales have ended; failures are logged and skipped.
	DrawDue(ctx context.Context, limit int) (int, error)
}

type raffleCommandsImpl struct {
	uow    shared.UnitOfWork
	picker raffle.Picker
	clock  clock.Clock
}

func NewRaffleCommands(uow shared.UnitOfWork, picker raffle.Picker, clk clock.Clock) RaffleCommands {
	return &raffleCommandsImpl{uow: uow, picker: picker, clock: clk}
}

func (c *raffleCommandsImpl) CreateRaffle(ctx context.Context, actor shared.Actor, req CreateRaffleRequest) (*CreateRaffleResult, error) {
	if !actor.CanManage(req.BusinessID) {
		return nil, errs.ErrForbidden
	}
	r, err := raffle.NewRaffle(raffle.NewRaffleParams{
		BusinessID:        req.BusinessID,
		Title:             req.Title,
		Description:       req.Description,
		PointsRequired:    req.PointsRequired,
		MaxTicketsPerUser: req.MaxTicketsPerUser,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	}, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Raffles().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("raffle created", "raffle_id", r.ID(), "business_id", r.BusinessID(), "actor_id", actor.UserID)
	return &CreateRaffleResult{RaffleID: r.ID()}, nil
}

func (c *raffleCommandsImpl) BuyTicket(ctx context.Context, customerID, raffleID uuid.UUID, key *IdempotencyKey) (*BuyTicketResult, error) {
	now := c.clock.Now()

	var (
		res      *BuyTicketResult
		replayed bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, replayed, err = runIdempotent(ctx, tx, customerID, key, now, func() (*BuyTicketResult, error) {
			return c.buyTicket(ctx, tx, customerID, raffleID, now)
		})
		return err
	})
	metrics.RecordOperation("buy_ticket", outcomeOf(err))
	if err != nil {
		return nil, err
	}
	res.IsReplayed = replayed
	if !replayed {
		recordMovement(ledger.EntryTicketPurchase, -res.PointsSpent)
		slog.Info("raffle ticket purchased",
			"customer_id", customerID,
			"raffle_id", raffleID,
			"ticket_id", res.TicketID,
			"balance", res.NewBalance)
	}
	return res, nil
}

// buyTicket holds the raffle row lock from the cap check through the insert,
// so concurrent purchases by one customer cannot overrun the cap.
func (c *raffleCommandsImpl) buyTicket(ctx context.Context, tx shared.Tx, customerID, raffleID uuid.UUID, now time.Time) (*BuyTicketResult, error) {
	r, err := lockRaffle(ctx, tx, raffleID)
	if err != nil {
		return nil, err
	}
	if err := r.EnsureOpenForPurchase(now); err != nil {
		return nil, err
	}

	owned, err := tx.Tickets().CountByCustomer(ctx, raffleID, customerID)
	if err != nil {
		return nil, err
	}
	if err := r.EnsureWithinTicketCap(owned); err != nil {
		return nil, err
	}

	key, err := ledger.NewAccountKey(customerID, r.BusinessID())
	if err != nil {
		return nil, err
	}
	ticket := raffle.NewTicket(r, customerID, now)
	ref := ticket.ID()

	entry, err := postDebit(ctx, tx, key, ledger.EntryTicketPurchase, ticket.Cost(), &ref, r.Title(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Tickets().Create(ctx, ticket); err != nil {
		return nil, err
	}

	return &BuyTicketResult{
		TicketID:    ticket.ID(),
		RaffleID:    raffleID,
		PointsSpent: ticket.PointsSpent(),
		NewBalance:  entry.BalanceAfter(),
	}, nil
}

func (c *raffleCommandsImpl) ReturnTickets(ctx context.Context, customerID, raffleID uuid.UUID) (*ReturnTicketsResult, error) {
	now := c.clock.Now()

	var res *ReturnTicketsResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockRaffle(ctx, tx, raffleID)
		if err != nil {
			return err
		}
		if err := r.EnsureReturnable(); err != nil {
			return err
		}

		key, err := ledger.NewAccountKey(customerID, r.BusinessID())
		if err != nil {
			return err
		}

		tickets, err := tx.Tickets().DeleteByCustomer(ctx, raffleID, customerID)
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			balance, err := tx.Accounts().Balance(ctx, key)
			if err != nil {
				return err
			}
			res = &ReturnTicketsResult{RaffleID: raffleID, NewBalance: balance}
			return nil
		}

		refund, err := ledger.NewPoints(raffle.RefundFor(tickets))
		if err != nil {
			return err
		}
		ref := raffleID
		note := "returned " + strconv.Itoa(len(tickets)) + " tickets"
		entry, err := postCredit(ctx, tx, key, ledger.EntryTicketRefund, refund, &ref, note, now)
		if err != nil {
			return err
		}
		res = &ReturnTicketsResult{
			RaffleID:        raffleID,
			ReturnedTickets: len(tickets),
			CreditedPoints:  refund.Value(),
			NewBalance:      entry.BalanceAfter(),
		}
		return nil
	})
	metrics.RecordOperation("return_tickets", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	if res.ReturnedTickets > 0 {
		recordMovement(ledger.EntryTicketRefund, res.CreditedPoints)
		slog.Info("raffle tickets returned",
			"customer_id", customerID,
			"raffle_id", raffleID,
			"tickets", res.ReturnedTickets,
			"refund", res.CreditedPoints)
	}
	return res, nil
}

func (c *raffleCommandsImpl) CloseRaffle(ctx context.Context, actor shared.Actor, raffleID uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockRaffle(ctx, tx, raffleID)
		if err != nil {
			return err
		}
		if !actor.CanManage(r.BusinessID()) {
			return errs.ErrForbidden
		}
		r.Close(now)
		return tx.Raffles().MarkClosed(ctx, r)
	})
}

func (c *raffleCommandsImpl) SelectWinner(ctx context.Context, actor shared.Actor, raffleID uuid.UUID) (*DrawResult, error) {
	res, err := c.selectWinner(ctx, raffleID, func(r *raffle.Raffle) error {
		if !actor.CanManage(r.BusinessID()) {
			return errs.ErrForbidden
		}
		return nil
	})
	metrics.RecordOperation("select_winner", outcomeOf(err))
	return res, err
}

func (c *raffleCommandsImpl) DrawDue(ctx context.Context, limit int) (int, error) {
	ids, err := c.uow.CommandReads().RafflesDueForDraw(ctx, c.clock.Now(), limit)
	if err != nil {
		return 0, err
	}

	drawn := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return drawn, ctx.Err()
		}
		_, err := c.selectWinner(ctx, id, nil)
		metrics.RecordOperation("select_winner", outcomeOf(err))
		switch {
		case err == nil:
			drawn++
		case errs.Is(err, errs.ErrAlreadyCompleted), errs.Is(err, errs.ErrNoParticipants):
			// a concurrent draw or refund got there first
		default:
			slog.Error("scheduled draw failed", "raffle_id", id, "error", err.Error())
		}
	}
	return drawn, nil
}

func (c *raffleCommandsImpl) selectWinner(ctx context.Context, raffleID uuid.UUID, authorize func(*raffle.Raffle) error) (*DrawResult, error) {
	now := c.clock.Now()

	var res *DrawResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockRaffle(ctx, tx, raffleID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(r); err != nil {
				return err
			}
		}
		if err := r.EnsureDrawable(); err != nil {
			return err
		}

		tickets, err := tx.Tickets().ListByRaffle(ctx, raffleID)
		if err != nil {
			return err
		}
		winner, err := raffle.DrawWinner(tickets, c.picker)
		if err != nil {
			return err
		}
		if err := r.Complete(winner, now); err != nil {
			return err
		}
		if err := tx.Raffles().Complete(ctx, r); err != nil {
			return err
		}

		res = &DrawResult{
			RaffleID:         raffleID,
			WinnerCustomerID: winner.CustomerID(),
			WinningTicketID:  winner.ID(),
			TotalTickets:     len(tickets),
		}
		return enqueueNotification(ctx, tx, NotificationRaffleWon, res, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDraw()
	slog.Info("raffle winner selected",
		"raffle_id", raffleID,
		"winner_customer_id", res.WinnerCustomerID,
		"winning_ticket_id", res.WinningTicketID,
		"tickets", res.TotalTickets)
	return res, nil
}

func lockRaffle(ctx context.Context, tx shared.Tx, raffleID uuid.UUID) (*raffle.Raffle, error) {
	r, err := tx.Raffles().FindForUpdate(ctx, raffleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRaffleNotFound
		}
		return nil, err
	}
	return r, nil
}
