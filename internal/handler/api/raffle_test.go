//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"loyalty-ledger/internal/handler/api"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/tests/common/builder"
	"loyalty-ledger/tests/common/httptest"
	commandsmock "loyalty-ledger/tests/mock/commands"
	queriesmock "loyalty-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RaffleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	slot         *actorSlot
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRaffleCommands
	mockQueries  *queriesmock.MockRaffleQueries
	customer     *builder.UserBuilder
	staff        *builder.UserBuilder
	businessID   uuid.UUID
	now          time.Time
}

func (s *RaffleHandlerTestSuite) SetupTest() {
	s.slot = &actorSlot{}
	s.router = newTestEngine(s.slot)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRaffleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRaffleQueries(s.mockCtrl)
	h := api.NewRaffleHandler(s.mockCommands, s.mockQueries)

	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.businessID = uuid.New()
	s.customer = builder.NewUserBuilder()
	s.staff = builder.NewUserBuilder().AsStaffOf(s.businessID)
	s.slot.set(s.customer.BuildActor())

	s.router.GET("/businesses/:businessId/raffles", h.List)
	s.router.GET("/raffles/:id", h.Get)
	s.router.POST("/raffles", h.Create)
	s.router.POST("/raffles/:id/tickets", middleware.IdempotencyKey(), h.BuyTicket)
	s.router.DELETE("/raffles/:id/tickets", h.ReturnTickets)
	s.router.POST("/raffles/:id/close", h.Close)
	s.router.POST("/raffles/:id/draw", h.Draw)
}

func (s *RaffleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRaffleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RaffleHandlerTestSuite))
}

func (s *RaffleHandlerTestSuite) openView() *queries.RaffleView {
	v := builder.NewRaffleBuilder(s.now).ForBusiness(s.businessID).BuildView()
	v.Status = "open"
	return v
}

func (s *RaffleHandlerTestSuite) TestList() {
	s.Run("success: lists the business's raffles", func() {
		s.mockQueries.EXPECT().ListRaffles(gomock.Any(), s.businessID).
			Return([]*queries.RaffleView{s.openView(), s.openView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/"+s.businessID.String()+"/raffles", nil, "")

		var response resdto.RaffleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Raffles, 2)
		s.Equal("open", response.Raffles[0].Status)
	})
}

func (s *RaffleHandlerTestSuite) TestGet() {
	view := s.openView()
	url := "/raffles/" + view.ID.String()

	s.Run("customer: passes the viewer to count own tickets", func() {
		mine := 2
		withMine := *view
		withMine.MyTickets = &mine
		s.mockQueries.EXPECT().GetRaffle(gomock.Any(), view.ID, &s.customer.ID).Return(&withMine, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RaffleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.MyTickets)
		s.Equal(2, *response.MyTickets)
	})

	s.Run("staff: no viewer", func() {
		s.slot.set(s.staff.BuildActor())
		defer s.slot.set(s.customer.BuildActor())
		s.mockQueries.EXPECT().GetRaffle(gomock.Any(), view.ID, (*uuid.UUID)(nil)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "my_tickets")
	})

	s.Run("error: 404 for an unknown raffle", func() {
		s.mockQueries.EXPECT().GetRaffle(gomock.Any(), view.ID, gomock.Any()).Return(nil, errs.ErrRaffleNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "RAFFLE_NOT_FOUND")
	})
}

func (s *RaffleHandlerTestSuite) TestCreate() {
	s.slot.set(s.staff.BuildActor())
	start := s.now
	end := s.now.Add(7 * 24 * time.Hour)
	body := map[string]any{
		"business_id":          s.businessID.String(),
		"title":                "Spring raffle",
		"points_required":      10,
		"max_tickets_per_user": 5,
		"start_date":           start.Format(time.RFC3339),
		"end_date":             end.Format(time.RFC3339),
	}

	s.Run("success: 201 with the stored raffle", func() {
		view := s.openView()
		s.mockCommands.EXPECT().
			CreateRaffle(gomock.Any(), s.staff.BuildActor(), commands.CreateRaffleRequest{
				BusinessID:        s.businessID,
				Title:             "Spring raffle",
				PointsRequired:    10,
				MaxTicketsPerUser: 5,
				StartDate:         start,
				EndDate:           end,
			}).
			Return(&commands.CreateRaffleResult{RaffleID: view.ID}, nil)
		s.mockQueries.EXPECT().GetRaffle(gomock.Any(), view.ID, (*uuid.UUID)(nil)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/raffles", body, "")

		var response resdto.RaffleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID.String(), response.ID)
	})

	s.Run("error: bad schedule is INVALID_REQUEST", func() {
		s.mockCommands.EXPECT().CreateRaffle(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("raffle end date must be after start date"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/raffles", body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: missing dates are rejected before the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/raffles", map[string]any{
			"business_id": s.businessID.String(),
			"title":       "No dates",
		}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func (s *RaffleHandlerTestSuite) TestBuyTicket() {
	raffleID := uuid.New()
	url := "/raffles/" + raffleID.String() + "/tickets"
	result := &commands.BuyTicketResult{TicketID: uuid.New(), RaffleID: raffleID, PointsSpent: 10, NewBalance: 90}

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().BuyTicket(gomock.Any(), s.customer.ID, raffleID, (*commands.IdempotencyKey)(nil)).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(90), response.NewBalance)
	})

	s.Run("success: key bound to the buy endpoint", func() {
		raw := uuid.New()
		want, err := commands.NewIdempotencyKey(raw, commands.EndpointBuyTicket, raffleID)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().BuyTicket(gomock.Any(), s.customer.ID, raffleID, want).Return(result, nil)

		rec := performWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]string{
			middleware.IdempotencyKeyHeader: raw.String(),
		})
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: domain failures map to their codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "cap reached", err: errs.ErrTicketLimitReached, status: http.StatusConflict, code: "TICKET_LIMIT_REACHED"},
			{name: "closed", err: errs.ErrRaffleClosed, status: http.StatusConflict, code: "RAFFLE_CLOSED"},
			{name: "insufficient balance", err: errs.ErrInsufficientBalance, status: http.StatusConflict, code: "INSUFFICIENT_BALANCE"},
			{name: "unknown raffle", err: errs.ErrRaffleNotFound, status: http.StatusNotFound, code: "RAFFLE_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BuyTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *RaffleHandlerTestSuite) TestReturnTickets() {
	raffleID := uuid.New()
	url := "/raffles/" + raffleID.String() + "/tickets"

	s.Run("success: reports refunded tickets", func() {
		s.mockCommands.EXPECT().ReturnTickets(gomock.Any(), s.customer.ID, raffleID).
			Return(&commands.ReturnTicketsResult{RaffleID: raffleID, ReturnedTickets: 3, CreditedPoints: 30, NewBalance: 100}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response resdto.ReturnTicketsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.ReturnedTickets)
		s.Equal(int64(30), response.CreditedPoints)
	})

	s.Run("error: 409 after the draw", func() {
		s.mockCommands.EXPECT().ReturnTickets(gomock.Any(), s.customer.ID, raffleID).Return(nil, errs.ErrAlreadyCompleted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "ALREADY_COMPLETED")
	})
}

func (s *RaffleHandlerTestSuite) TestClose() {
	s.slot.set(s.staff.BuildActor())
	view := s.openView()
	view.Status = "closed"
	url := "/raffles/" + view.ID.String() + "/close"

	s.Run("success: returns the closed raffle", func() {
		s.mockCommands.EXPECT().CloseRaffle(gomock.Any(), s.staff.BuildActor(), view.ID).Return(nil)
		s.mockQueries.EXPECT().GetRaffle(gomock.Any(), view.ID, (*uuid.UUID)(nil)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RaffleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("closed", response.Status)
	})

	s.Run("error: 403 for another business", func() {
		s.mockCommands.EXPECT().CloseRaffle(gomock.Any(), gomock.Any(), view.ID).Return(errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *RaffleHandlerTestSuite) TestDraw() {
	s.slot.set(s.staff.BuildActor())
	raffleID := uuid.New()
	url := "/raffles/" + raffleID.String() + "/draw"

	s.Run("success: returns the winner", func() {
		winner := uuid.New()
		s.mockCommands.EXPECT().SelectWinner(gomock.Any(), s.staff.BuildActor(), raffleID).
			Return(&commands.DrawResult{RaffleID: raffleID, WinnerCustomerID: winner, WinningTicketID: uuid.New(), TotalTickets: 4}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.DrawResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(winner.String(), response.WinnerCustomerID)
		s.Equal(4, response.TotalTickets)
	})

	s.Run("error: second draw and empty raffle", func() {
		cases := []struct {
			name string
			err  error
			code string
		}{
			{name: "already completed", err: errs.ErrAlreadyCompleted, code: "ALREADY_COMPLETED"},
			{name: "no participants", err: errs.ErrNoParticipants, code: "NO_PARTICIPANTS"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SelectWinner(gomock.Any(), gomock.Any(), raffleID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, tc.code)
			})
		}
	})
}
