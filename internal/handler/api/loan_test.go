//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"library-api/internal/handler/api"
	resdto "library-api/internal/handler/dto/response"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/queries"
	"library-api/tests/common/builder"
	"library-api/tests/common/httptest"
	"library-api/tests/common/testutil"
	commandsmock "library-api/tests/mock/commands"
	queriesmock "library-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoanCommands
	mockQueries  *queriesmock.MockLoanQueries
	handler      *api.LoanHandler
}

func (s *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoanQueries(s.mockCtrl)
	s.handler = api.NewLoanHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/loans", s.handler.Create)
	s.router.GET("/api/loans", s.handler.Find)
	s.router.GET("/api/loans/:id", s.handler.Get)
	s.router.PATCH("/api/loans/:id", s.handler.Return)
}

func (s *LoanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoanHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *LoanHandlerTestSuite) TestCreate() {
	url := "/api/loans"

	reqBody := builder.NewLoanBuilder().BuildCreateRequestDTO()
	loanID := uuid.New()

	s.Run("success: returns 201 Created with the loan id", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(loanID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreatedLoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(loanID, body.ID)
	})

	s.Run("success: email is optional", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(loanID, nil).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body resdto.CreatedLoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		invalid := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: isbn (required)", mutate: testutil.Field("isbn", nil)},
			{name: "missing field: customer (required)", mutate: testutil.Field("customer", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for unknown isbn", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrBookNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Livro não encontrado para o isbn informado.")
	})

	s.Run("error: 409 Conflict when the book is already on loan", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrBookUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Livro já emprestado.")
	})
}

// ================================================================================
// TestReturn
// ================================================================================

func (s *LoanHandlerTestSuite) TestReturn() {
	body := map[string]any{"returned": true}

	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().MarkReturned(gomock.Any(), id, true).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/loans/"+id.String(), body)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: explicit false is a valid payload", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().MarkReturned(gomock.Any(), id, false).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/loans/"+id.String(),
			map[string]any{"returned": false})

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when returned is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/loans/"+uuid.NewString(),
			map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown loan", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().MarkReturned(gomock.Any(), id, true).
			Return(errs.ErrLoanNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/loans/"+id.String(), body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Empréstimo não encontrado.")
	})

	s.Run("error: 409 Conflict when reopening a returned loan", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().MarkReturned(gomock.Any(), id, false).
			Return(errs.ErrLoanAlreadyReturned).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/loans/"+id.String(),
			map[string]any{"returned": false})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Empréstimo já devolvido.")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *LoanHandlerTestSuite) TestGet() {
	returnView := builder.NewLoanBuilder().BuildView()

	s.Run("success: returns 200 OK with the loan and its book", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/loans/"+returnView.ID.String(), nil)

		var body resdto.LoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.BookID, body.Book.ID)
		s.Equal("2024-03-10", body.LoanDate)
	})

	s.Run("error: 404 Not Found for unknown loan", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrLoanNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/loans/"+id.String(), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Empréstimo não encontrado.")
	})
}

// ================================================================================
// TestFind
// ================================================================================

func (s *LoanHandlerTestSuite) TestFind() {
	s.Run("success: filters by isbn or customer", func() {
		view := builder.NewLoanBuilder().BuildView()
		page := &queries.LoanPage{Items: []queries.LoanView{*view}, Total: 1}

		s.mockQueries.EXPECT().Search(gomock.Any(),
			queries.LoanFilter{ISBN: "001", Customer: "Fulano"}, queries.NewPage(1, 20)).
			Return(page, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/loans?isbn=001&customer=Fulano", nil)

		var body resdto.LoanPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(int64(1), body.Total)
	})

	s.Run("success: no filter lists everything paged", func() {
		page := &queries.LoanPage{Items: []queries.LoanView{}, Total: 0}

		s.mockQueries.EXPECT().Search(gomock.Any(), queries.LoanFilter{}, queries.NewPage(1, 20)).
			Return(page, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/loans", nil)

		var body resdto.LoanPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})
}
