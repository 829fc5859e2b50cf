package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the error envelope every failed request gets: a flat list of
// human-readable messages, business failures and field validation alike.
type Response struct {
	Status int      `json:"-"`
	Errors []string `json:"errors"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, messages ...string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Errors: messages}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BindingMessages flattens a gin binding failure into one message per invalid
// field, composing with the business-error envelope shape.
func BindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"corpo da requisição inválido"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " é obrigatório"
	case "email":
		return fe.Field() + " deve ser um email válido"
	default:
		return fe.Field() + " é inválido"
	}
}
