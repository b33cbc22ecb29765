// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"minibank/internal/domain"
	"minibank/pkg/errorspkg"
	"minibank/pkg/moneypkg"
	"minibank/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
type Service interface {
	Create(ctx context.Context, email, startingBalance string) (domain.Account, error)
	Get(ctx context.Context, email string) (domain.Account, error)
	Deposit(ctx context.Context, email, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, email, amount string) (domain.Account, error)
	Transfer(ctx context.Context, fromEmail, toEmail, amount string) (domain.TransferResult, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// AccountResponse is the wire representation of an account.
type AccountResponse struct {
	Email   string `json:"email"`
	Balance string `json:"balance"`
}

func toAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		Email:   a.Email(),
		Balance: a.Balance().StringFixed(moneypkg.Scale),
	}
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

type createRequest struct {
	Email   string `json:"email" binding:"required,email_id"`
	Balance string `json:"balance" binding:"required"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := h.service.Create(ctx, req.Email, req.Balance)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			gctx.JSON(http.StatusConflict, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: toAccountResponse(account)})
}

type getRequest struct {
	Email string `uri:"email" binding:"required"`
}

// Get handles http request to get an account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := h.service.Get(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: toAccountResponse(account)})
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// Deposit handles http request to add money to an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.mutateBalance(gctx, h.service.Deposit)
}

// Withdraw handles http request to take money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.mutateBalance(gctx, h.service.Withdraw)
}

func (h *Handler) mutateBalance(gctx *gin.Context, op func(ctx context.Context, email, amount string) (domain.Account, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := op(ctx, uri.Email, req.Amount)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		case errors.Is(err, domain.ErrAccountNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrInsufficientBalance):
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: toAccountResponse(account)})
}

type transferRequest struct {
	FromEmail string `json:"from_email" binding:"required,email_id"`
	ToEmail   string `json:"to_email" binding:"required,email_id"`
	Amount    string `json:"amount" binding:"required"`
}

// TransferResponse is the wire representation of a completed transfer.
type TransferResponse struct {
	FromAccount AccountResponse `json:"from_account"`
	ToAccount   AccountResponse `json:"to_account"`
}

// Transfer handles http request to move money between two accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	result, err := h.service.Transfer(ctx, req.FromEmail, req.ToEmail, req.Amount)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		case errors.Is(err, domain.ErrAccountNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrInsufficientBalance):
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	res := TransferResponse{
		FromAccount: toAccountResponse(result.From),
		ToAccount:   toAccountResponse(result.To),
	}

	gctx.JSON(http.StatusOK, web.Response{Data: res})
}
