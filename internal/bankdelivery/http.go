// Package bankdelivery manages delivery layer of banks.
package bankdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

// Service provides service layer interface needed by bank delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error)
	Get(ctx context.Context, traderID, bankID int32) (domain.Bank, error)
	ListWithBalance(ctx context.Context, traderID int32) ([]domain.Bank, error)
	Update(ctx context.Context, traderID, bankID int32, arg domain.UpdateBankParams) (domain.Bank, error)
	Delete(ctx context.Context, traderID, bankID int32) error
}

// Handler facilitates bank delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bank handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

type data struct {
	Bank domain.Bank `json:"bank"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type listData struct {
	Count int           `json:"count"`
	Banks []domain.Bank `json:"banks"`
}

type traderURI struct {
	TraderID int32 `uri:"traderId" binding:"required,min=1"`
}

type bankURI struct {
	TraderID int32 `uri:"traderId" binding:"required,min=1"`
	BankID   int32 `uri:"bankId" binding:"required,min=1"`
}

type createRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

// Create handles http request to create a bank under a trader.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri traderURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	bank, err := h.service.Create(ctx, domain.CreateBankParams{
		TraderID: uri.TraderID,
		Name:     req.Name,
		Code:     req.Code,
	})
	if err != nil {
		if err == domain.ErrTraderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{bank}})
}

// Get handles http request to get a bank with its entries and balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri bankURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	bank, err := h.service.Get(ctx, uri.TraderID, uri.BankID)
	if err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrTraderNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{bank}})
}

// List handles http request to list a trader's banks with balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri traderURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	banks, err := h.service.ListWithBalance(ctx, uri.TraderID)
	if err != nil {
		if err == domain.ErrTraderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Count: len(banks), Banks: banks}})
}

type updateRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// Update handles http request to partially update a bank.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri bankURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	bank, err := h.service.Update(ctx, uri.TraderID, uri.BankID, domain.UpdateBankParams{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrTraderNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{bank}})
}

// Delete handles http request to delete a bank and its ledger entries.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri bankURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, uri.TraderID, uri.BankID); err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrTraderNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: "Bank and all associated ledger entries deleted successfully"})
}
