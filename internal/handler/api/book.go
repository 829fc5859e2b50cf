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
	"github.com/google/uuid"
)

const (
	msgDuplicateISBN = "ISBN já cadastrado"
	msgBookNotFound  = "Livro não encontrado."
	msgBookIDNull    = "Id do livro não pode ser nulo."
	msgInvalidID     = "Identificador inválido."
	msgInternal      = "Erro interno. Tente novamente mais tarde."
)

type BookHandler struct {
	commands commands.BookCommands
	queries  queries.BookQueries
	loans    queries.LoanQueries
}

func NewBookHandler(cmds commands.BookCommands, qs queries.BookQueries, loans queries.LoanQueries) *BookHandler {
	return &BookHandler{commands: cmds, queries: qs, loans: loans}
}

func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateISBN):
			httperr.AbortWithError(c, http.StatusConflict, err, msgDuplicateISBN)
		case errors.Is(err, errs.ErrInvalidArgument):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Requisição inválida.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookView(view))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), commands.UpdateBookParams{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookNotFound)
		case errors.Is(err, errs.ErrInvalidArgument):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgBookIDNull)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookNotFound)
		case errors.Is(err, errs.ErrInvalidArgument):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgBookIDNull)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) Find(c *gin.Context) {
	var req reqdto.BookSearchRequest
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

	c.JSON(http.StatusOK, resdto.FromBookPage(result, page))
}

func (h *BookHandler) LoansByBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessages(err)...)
		return
	}

	page := req.ToPage()
	result, err := h.loans.ListByBook(c.Request.Context(), id, page)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanPage(result, page))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
