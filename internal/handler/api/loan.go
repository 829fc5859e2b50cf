package api

import (
	"errors"
	"net/http"

	reqdto "library-api/internal/handler/dto/request"
	resdto "library-api/internal/handler/dto/response"
	"library-api/internal/handler/httperr"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgBookNotFoundForISBN = "Livro não encontrado para o isbn informado."
	msgBookUnavailable     = "Livro já emprestado."
	msgLoanNotFound        = "Empréstimo não encontrado."
	msgLoanReturned        = "Empréstimo já devolvido."
)

type LoanHandler struct {
	commands commands.LoanCommands
	queries  queries.LoanQueries
}

func NewLoanHandler(cmds commands.LoanCommands, qs queries.LoanQueries) *LoanHandler {
	return &LoanHandler{commands: cmds, queries: qs}
}

func (h *LoanHandler) Create(c *gin.Context) {
	var req reqdto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	id, err := h.commands.CreateLoan(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgBookNotFoundForISBN)
		case errors.Is(err, errs.ErrBookUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, msgBookUnavailable)
		case errors.Is(err, errs.ErrInvalidArgument):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Requisição inválida.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedLoanResponse{ID: id})
}

func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.ReturnedLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	if err := h.commands.MarkReturned(c.Request.Context(), id, *req.Returned); err != nil {
		switch {
		case errors.Is(err, errs.ErrLoanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgLoanNotFound)
		case errors.Is(err, errs.ErrLoanAlreadyReturned):
			httperr.AbortWithError(c, http.StatusConflict, err, msgLoanReturned)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrLoanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgLoanNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}

func (h *LoanHandler) Find(c *gin.Context) {
	var req reqdto.LoanSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	page := req.ToPage()
	result, err := h.queries.Search(c.Request.Context(), req.ToFilter(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanPage(result, page))
}
