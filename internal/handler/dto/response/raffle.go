package response

import (
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

type RaffleResponse struct {
	ID                string  `json:"id"`
	BusinessID        string  `json:"business_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	PointsRequired    int64   `json:"points_required"`
	MaxTicketsPerUser int     `json:"max_tickets_per_user"`
	StartDate         int64   `json:"start_date"`
	EndDate           int64   `json:"end_date"`
	ClosedAt          *int64  `json:"closed_at,omitempty"`
	Status            string  `json:"status"`
	WinnerCustomerID  *string `json:"winner_customer_id,omitempty"`
	TotalTickets      int     `json:"total_tickets"`
	Participants      int     `json:"participants"`
	MyTickets         *int    `json:"my_tickets,omitempty"`
}

func FromRaffleView(v *queries.RaffleView) *RaffleResponse {
	out := &RaffleResponse{
		ID:                v.ID.String(),
		BusinessID:        v.BusinessID.String(),
		Title:             v.Title,
		Description:       v.Description,
		PointsRequired:    v.PointsRequired,
		MaxTicketsPerUser: v.MaxTicketsPerUser,
		StartDate:         v.StartDate.Unix(),
		EndDate:           v.EndDate.Unix(),
		Status:            v.Status,
		TotalTickets:      v.TotalTickets,
		Participants:      v.Participants,
		MyTickets:         v.MyTickets,
	}
	if v.ClosedAt != nil {
		closed := v.ClosedAt.Unix()
		out.ClosedAt = &closed
	}
	if v.WinnerCustomerID != nil {
		winner := v.WinnerCustomerID.String()
		out.WinnerCustomerID = &winner
	}
	return out
}

type RaffleListResponse struct {
	Raffles []*RaffleResponse `json:"raffles"`
}

func FromRaffleViews(vs []*queries.RaffleView) *RaffleListResponse {
	out := &RaffleListResponse{Raffles: make([]*RaffleResponse, 0, len(vs))}
	for _, v := range vs {
		out.Raffles = append(out.Raffles, FromRaffleView(v))
	}
	return out
}

type TicketResponse struct {
	TicketID    string `json:"ticket_id"`
	RaffleID    string `json:"raffle_id"`
	PointsSpent int64  `json:"points_spent"`
	NewBalance  int64  `json:"new_balance"`
}

func FromBuyTicketResult(r *commands.BuyTicketResult) *TicketResponse {
	return &TicketResponse{
		TicketID:    r.TicketID.String(),
		RaffleID:    r.RaffleID.String(),
		PointsSpent: r.PointsSpent,
		NewBalance:  r.NewBalance,
	}
}

type ReturnTicketsResponse struct {
	RaffleID        string `json:"raffle_id"`
	ReturnedTickets int    `json:"returned_tickets"`
	CreditedPoints  int64  `json:"credited_points"`
	NewBalance      int64  `json:"new_balance"`
}

func FromReturnTicketsResult(r *commands.ReturnTicketsResult) *ReturnTicketsResponse {
	return &ReturnTicketsResponse{
		RaffleID:        r.RaffleID.String(),
		ReturnedTickets: r.ReturnedTickets,
		CreditedPoints:  r.CreditedPoints,
		NewBalance:      r.NewBalance,
	}
}

type DrawResponse struct {
	RaffleID         string `json:"raffle_id"`
	WinnerCustomerID string `json:"winner_customer_id"`
	WinningTicketID  string `json:"winning_ticket_id"`
	TotalTickets     int    `json:"total_tickets"`
}

func FromDrawResult(r *commands.DrawResult) *DrawResponse {
	return &DrawResponse{
		RaffleID:         r.RaffleID.String(),
		WinnerCustomerID: r.WinnerCustomerID.String(),
		WinningTicketID:  r.WinningTicketID.String(),
		TotalTickets:     r.TotalTickets,
	}
}
