// Package traderdelivery manages delivery layer of traders.
package traderdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

// Service provides service layer interface needed by trader delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package traderdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTraderParams) (domain.Trader, error)
	Get(ctx context.Context, id int32) (domain.Trader, error)
	List(ctx context.Context) ([]domain.Trader, error)
	Update(ctx context.Context, id int32, arg domain.UpdateTraderParams) (domain.Trader, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates trader delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns trader handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type data struct {
	Trader domain.Trader `json:"trader"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type listData struct {
	Count   int             `json:"count"`
	Traders []domain.Trader `json:"traders"`
}

type uriRequest struct {
	TraderID int32 `uri:"traderId" binding:"required,min=1"`
}

type createRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"shortName" binding:"required"`
	Color     string `json:"color"`
}

// Create handles http request to create a trader.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	trader, err := h.service.Create(ctx, domain.CreateTraderParams{
		Name:      req.Name,
		ShortName: req.ShortName,
		Color:     req.Color,
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{trader}})
}

// Get handles http request to get a trader with its banks and balances.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	trader, err := h.service.Get(ctx, req.TraderID)
	if err != nil {
		if err == domain.ErrTraderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{trader}})
}

// List handles http request to list all traders with balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	traders, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Count: len(traders), Traders: traders}})
}

type updateRequest struct {
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
	Color     *string `json:"color"`
}

// Update handles http request to partially update a trader.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
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

	trader, err := h.service.Update(ctx, uri.TraderID, domain.UpdateTraderParams{
		Name:      req.Name,
		ShortName: req.ShortName,
		Color:     req.Color,
	})
	if err != nil {
		if err == domain.ErrTraderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{trader}})
}

// Delete handles http request to delete a trader and all associated data.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, req.TraderID); err != nil {
		if err == domain.ErrTraderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: "Trader and all associated data deleted successfully"})
}
