package raffle

import "loyalty-ledger/internal/pkg/errs"

// Picker returns a uniformly distributed index in [0, n).
type Picker interface {
	Intn(n int) int
}

// DrawWinner picks one ticket uniformly, which weights customers by ticket count.
func DrawWinner(tickets []*Ticket, p Picker) (*Ticket, error) {
	if len(tickets) == 0 {
		return nil, errs.ErrNoParticipants
	}
	return tickets[p.Intn(len(tickets))], nil
}
