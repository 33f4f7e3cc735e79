package response

import (
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

type BalanceResponse struct {
	CustomerID   string `json:"customer_id"`
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Points       int64  `json:"points"`
	UpdatedAt    int64  `json:"updated_at"`
}

func FromAccountView(v *queries.AccountView) BalanceResponse {
	return BalanceResponse{
		CustomerID:   v.CustomerID.String(),
		BusinessID:   v.BusinessID.String(),
		BusinessName: v.BusinessName,
		Points:       v.Points,
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

type BalanceListResponse struct {
	Accounts []BalanceResponse `json:"accounts"`
}

func FromAccountViews(vs []*queries.AccountView) *BalanceListResponse {
	out := &BalanceListResponse{Accounts: make([]BalanceResponse, 0, len(vs))}
	for _, v := range vs {
		out.Accounts = append(out.Accounts, FromAccountView(v))
	}
	return out
}

type LedgerEntryResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Delta        int64   `json:"delta"`
	BalanceAfter int64   `json:"balance_after"`
	ReferenceID  *string `json:"reference_id,omitempty"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

type HistoryResponse struct {
	Entries    []LedgerEntryResponse `json:"entries"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func FromHistory(entries []*queries.LedgerEntryView, next *queries.Cursor) *HistoryResponse {
	out := &HistoryResponse{Entries: make([]LedgerEntryResponse, 0, len(entries))}
	for _, e := range entries {
		item := LedgerEntryResponse{
			ID:           e.ID.String(),
			Kind:         e.Kind,
			Delta:        e.Delta,
			BalanceAfter: e.BalanceAfter,
			Note:         e.Note,
			CreatedAt:    e.CreatedAt.Unix(),
		}
		if e.ReferenceID != nil {
			ref := e.ReferenceID.String()
			item.ReferenceID = &ref
		}
		out.Entries = append(out.Entries, item)
	}
	if next != nil {
		out.NextCursor = &next.After
	}
	return out
}

type LedgerEntryResultResponse struct {
	EntryID    string `json:"entry_id"`
	CustomerID string `json:"customer_id"`
	BusinessID string `json:"business_id"`
	Delta      int64  `json:"delta"`
	NewBalance int64  `json:"new_balance"`
}

func FromLedgerResult(r *commands.LedgerResult) *LedgerEntryResultResponse {
	return &LedgerEntryResultResponse{
		EntryID:    r.EntryID.String(),
		CustomerID: r.CustomerID.String(),
		BusinessID: r.BusinessID.String(),
		Delta:      r.Delta,
		NewBalance: r.NewBalance,
	}
}
