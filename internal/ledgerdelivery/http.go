// Package ledgerdelivery manages delivery layer of bank ledger entries.
package ledgerdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerservice"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	List(ctx context.Context, traderID, bankID int32) ([]domain.LedgerEntry, domain.LedgerSummary, error)
	Get(ctx context.Context, traderID, bankID int32, entryID int64) (domain.LedgerEntry, error)
	Create(ctx context.Context, traderID, bankID int32, arg ledgerservice.CreateParams) (domain.LedgerEntry, error)
	Update(ctx context.Context, traderID, bankID int32, entryID int64, arg domain.UpdateLedgerEntryParams) (domain.LedgerEntry, error)
	Delete(ctx context.Context, traderID, bankID int32, entryID int64) error
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

type data struct {
	Entry domain.LedgerEntry `json:"entry"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type listData struct {
	Count            int                  `json:"count"`
	TotalCredit      float64              `json:"totalCredit"`
	TotalDebit       float64              `json:"totalDebit"`
	RemainingBalance float64              `json:"remainingBalance"`
	Entries          []domain.LedgerEntry `json:"entries"`
}

type bankURI struct {
	TraderID int32 `uri:"traderId" binding:"required,min=1"`
	BankID   int32 `uri:"bankId" binding:"required,min=1"`
}

type entryURI struct {
	TraderID int32 `uri:"traderId" binding:"required,min=1"`
	BankID   int32 `uri:"bankId" binding:"required,min=1"`
	EntryID  int64 `uri:"entryId" binding:"required,min=1"`
}

// List handles http request to list a bank's entries with running balances
// and scope totals.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri bankURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entries, summary, err := h.service.List(ctx, uri.TraderID, uri.BankID)
	if err != nil {
		if err == domain.ErrBankNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := listData{
		Count:            len(entries),
		TotalCredit:      summary.TotalCredit,
		TotalDebit:       summary.TotalDebit,
		RemainingBalance: summary.RemainingBalance,
		Entries:          entries,
	}

	gctx.JSON(http.StatusOK, web.Response{Data: res})
}

// Get handles http request to get a single ledger entry.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri entryURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entry, err := h.service.Get(ctx, uri.TraderID, uri.BankID, uri.EntryID)
	if err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrLedgerEntryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type createRequest struct {
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
	ReferenceType   string  `json:"referenceType"`
	AmountAdded     float64 `json:"amountAdded" binding:"gte=0"`
	AmountWithdrawn float64 `json:"amountWithdrawn" binding:"gte=0"`
	ReferencePerson string  `json:"referencePerson"`
}

// Create handles http request to create a ledger entry.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri bankURI
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

	entry, err := h.service.Create(ctx, uri.TraderID, uri.BankID, ledgerservice.CreateParams{
		Date:            req.Date,
		ReferenceType:   req.ReferenceType,
		AmountAdded:     req.AmountAdded,
		AmountWithdrawn: req.AmountWithdrawn,
		ReferencePerson: req.ReferencePerson,
	})
	if err != nil {
		switch err {
		case domain.ErrBankNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrNoAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{entry}})
}

type updateRequest struct {
	Date            *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ReferenceType   *string  `json:"referenceType"`
	AmountAdded     *float64 `json:"amountAdded" binding:"omitempty,gte=0"`
	AmountWithdrawn *float64 `json:"amountWithdrawn" binding:"omitempty,gte=0"`
	ReferencePerson *string  `json:"referencePerson"`
}

// Update handles http request to partially update a ledger entry.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri entryURI
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

	entry, err := h.service.Update(ctx, uri.TraderID, uri.BankID, uri.EntryID, domain.UpdateLedgerEntryParams{
		Date:            req.Date,
		ReferenceType:   req.ReferenceType,
		AmountAdded:     req.AmountAdded,
		AmountWithdrawn: req.AmountWithdrawn,
		ReferencePerson: req.ReferencePerson,
	})
	if err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrLedgerEntryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrNoAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

// Delete handles http request to delete a ledger entry.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri entryURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, uri.TraderID, uri.BankID, uri.EntryID); err != nil {
		switch err {
		case domain.ErrBankNotFound, domain.ErrLedgerEntryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: "Ledger entry deleted successfully"})
}
