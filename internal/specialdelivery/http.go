// Package specialdelivery manages delivery layer of special entries.
package specialdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/internal/specialservice"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

// Service provides service layer interface needed by special delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package specialdelivery
type Service interface {
	List(ctx context.Context) ([]domain.SpecialEntry, error)
	Get(ctx context.Context, id int64) (domain.SpecialEntry, error)
	Create(ctx context.Context, arg specialservice.CreateParams) (domain.SpecialEntry, error)
	Update(ctx context.Context, id int64, arg domain.UpdateSpecialEntryParams) (domain.SpecialEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates special delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns special handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type data struct {
	Entry domain.SpecialEntry `json:"entry"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type listData struct {
	Count   int                   `json:"count"`
	Entries []domain.SpecialEntry `json:"entries"`
}

type uriRequest struct {
	EntryID int64 `uri:"entryId" binding:"required,min=1"`
}

// List handles http request to list all special entries with running balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	entries, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Count: len(entries), Entries: entries}})
}

// Get handles http request to get a single special entry.
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
		if err == domain.ErrSpecialEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type createRequest struct {
	UserName        string  `json:"userName" binding:"required"`
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
	BalanceType     string  `json:"balanceType"`
	NameRupees      float64 `json:"nameRupees" binding:"gte=0"`
	SubmittedRupees float64 `json:"submittedRupees" binding:"gte=0"`
	ReferencePerson string  `json:"referencePerson"`
}

// Create handles http request to create a special entry.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entry, err := h.service.Create(ctx, specialservice.CreateParams{
		UserName:        req.UserName,
		Date:            req.Date,
		BalanceType:     req.BalanceType,
		NameRupees:      req.NameRupees,
		SubmittedRupees: req.SubmittedRupees,
		ReferencePerson: req.ReferencePerson,
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{entry}})
}

type updateRequest struct {
	UserName        *string  `json:"userName"`
	Date            *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	BalanceType     *string  `json:"balanceType"`
	NameRupees      *float64 `json:"nameRupees" binding:"omitempty,gte=0"`
	SubmittedRupees *float64 `json:"submittedRupees" binding:"omitempty,gte=0"`
	ReferencePerson *string  `json:"referencePerson"`
}

// Update handles http request to partially update a special entry.
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

	entry, err := h.service.Update(ctx, uri.EntryID, domain.UpdateSpecialEntryParams{
		UserName:        req.UserName,
		Date:            req.Date,
		BalanceType:     req.BalanceType,
		NameRupees:      req.NameRupees,
		SubmittedRupees: req.SubmittedRupees,
		ReferencePerson: req.ReferencePerson,
	})
	if err != nil {
		if err == domain.ErrSpecialEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

// Delete handles http request to delete a special entry.
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
		if err == domain.ErrSpecialEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: "Special entry deleted successfully"})
}
