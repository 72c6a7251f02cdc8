// Package saudidelivery manages delivery layer of saudi entries.
package saudidelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/internal/saudiservice"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

// Service provides service layer interface needed by saudi delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package saudidelivery
type Service interface {
	List(ctx context.Context) ([]domain.SaudiEntry, error)
	Get(ctx context.Context, id int64) (domain.SaudiEntry, error)
	Create(ctx context.Context, arg saudiservice.CreateParams) (domain.SaudiEntry, error)
	Update(ctx context.Context, id int64, arg domain.UpdateSaudiEntryParams) (domain.SaudiEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates saudi delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns saudi handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type data struct {
	Entry domain.SaudiEntry `json:"entry"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type listData struct {
	Count   int                 `json:"count"`
	Entries []domain.SaudiEntry `json:"entries"`
}

type uriRequest struct {
	EntryID int64 `uri:"entryId" binding:"required,min=1"`
}

// List handles http request to list all saudi entries with running balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	entries, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Count: len(entries), Entries: entries}})
}

// Get handles http request to get a single saudi entry.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entry, err := h.service.Get(ctx, uri.EntryID)
	if err != nil {
		if err == domain.ErrSaudiEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type createRequest struct {
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string  `json:"time" binding:"omitempty,clocktime"`
	RefNo        string  `json:"refNo"`
	PkrAmount    float64 `json:"pkrAmount" binding:"gte=0"`
	RiyalRate    float64 `json:"riyalRate" binding:"gte=0"`
	SubmittedSar float64 `json:"submittedSar" binding:"gte=0"`
	Reference2   string  `json:"reference2"`
}

// Create handles http request to create a saudi entry.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entry, err := h.service.Create(ctx, saudiservice.CreateParams{
		Date:         req.Date,
		Time:         req.Time,
		RefNo:        req.RefNo,
		PkrAmount:    req.PkrAmount,
		RiyalRate:    req.RiyalRate,
		SubmittedSar: req.SubmittedSar,
		Reference2:   req.Reference2,
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{entry}})
}

type updateRequest struct {
	Date         *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time         *string  `json:"time" binding:"omitempty,clocktime"`
	RefNo        *string  `json:"refNo"`
	PkrAmount    *float64 `json:"pkrAmount" binding:"omitempty,gte=0"`
	RiyalRate    *float64 `json:"riyalRate" binding:"omitempty,gte=0"`
	SubmittedSar *float64 `json:"submittedSar" binding:"omitempty,gte=0"`
	Reference2   *string  `json:"reference2"`
}

// Update handles http request to partially update a saudi entry.
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

	entry, err := h.service.Update(ctx, uri.EntryID, domain.UpdateSaudiEntryParams{
		Date:         req.Date,
		Time:         req.Time,
		RefNo:        req.RefNo,
		PkrAmount:    req.PkrAmount,
		RiyalRate:    req.RiyalRate,
		SubmittedSar: req.SubmittedSar,
		Reference2:   req.Reference2,
	})
	if err != nil {
		if err == domain.ErrSaudiEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

// Delete handles http request to delete a saudi entry.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, uri.EntryID); err != nil {
		if err == domain.ErrSaudiEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: "Saudi entry deleted successfully"})
}
