package ledgerdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerservice"
	"github.com/mkbukhari/hisaab-kitaab/internal/middleware"
	"github.com/mkbukhari/hisaab-kitaab/internal/test"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/randompkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/tokenpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const (
	testTraderID int32 = 7
	testBankID   int32 = 3
)

func TestCreate(t *testing.T) {
	email := randompkg.Email()
	entry := test.RandomLedgerEntry(testBankID)
	tokenSecretKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewJWTMaker(tokenSecretKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewJWTMaker(%v) returned error: %v", tokenSecretKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		Date            string  `json:"date"`
		ReferenceType   string  `json:"referenceType"`
		AmountAdded     float64 `json:"amountAdded"`
		AmountWithdrawn float64 `json:"amountWithdrawn"`
		ReferencePerson string  `json:"referencePerson"`
	}

	okBody := requestBody{
		Date:            entry.Date,
		ReferenceType:   entry.ReferenceType,
		AmountAdded:     entry.AmountAdded,
		AmountWithdrawn: entry.AmountWithdrawn,
		ReferencePerson: entry.ReferencePerson,
	}

	okParams := ledgerservice.CreateParams{
		Date:            entry.Date,
		ReferenceType:   entry.ReferenceType,
		AmountAdded:     entry.AmountAdded,
		AmountWithdrawn: entry.AmountWithdrawn,
		ReferencePerson: entry.ReferencePerson,
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: okBody,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID), gomock.Eq(okParams)).
					Times(1).
					Return(entry, nil)
			},
			wantStatusCode: http.StatusCreated,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Entry domain.LedgerEntry `json:"entry"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(entry, got.Entry, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: okBody,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name: "MissingDate",
			requestBody: requestBody{
				AmountAdded: 100,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Date field is required",
		},
		{
			name: "MalformedDate",
			requestBody: requestBody{
				Date:        "31-01-2024",
				AmountAdded: 100,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Date must be a date in YYYY-MM-DD format",
		},
		{
			name: "NegativeAmount",
			requestBody: requestBody{
				Date:        entry.Date,
				AmountAdded: -100,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "AmountAdded must be greater than or equal to 0",
		},
		{
			name: "NoAmount",
			requestBody: requestBody{
				Date: entry.Date,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID), gomock.Any()).
					Times(1).
					Return(domain.LedgerEntry{}, domain.ErrNoAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrNoAmount.Error(),
		},
		{
			name:        "BankNotFound",
			requestBody: okBody,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID), gomock.Eq(okParams)).
					Times(1).
					Return(domain.LedgerEntry{}, domain.ErrBankNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrBankNotFound.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: okBody,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID), gomock.Eq(okParams)).
					Times(1).
					Return(domain.LedgerEntry{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/traders/:traderId/banks/:bankId/entries", handler.Create)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			url := fmt.Sprintf("/traders/%d/banks/%d/entries", testTraderID, testBankID)

			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Entry domain.LedgerEntry `json:"entry"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusCreated {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestList(t *testing.T) {
	email := randompkg.Email()
	tokenSecretKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewJWTMaker(tokenSecretKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewJWTMaker(%v) returned error: %v", tokenSecretKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		{ID: 1, BankID: testBankID, Date: "2024-01-01", AmountAdded: 1000, RemainingAmount: 1000, RunningBalance: 1000, CreatedAt: base},
		{ID: 2, BankID: testBankID, Date: "2024-01-02", AmountWithdrawn: 300, RemainingAmount: -300, RunningBalance: 700, CreatedAt: base.Add(time.Hour)},
		{ID: 3, BankID: testBankID, Date: "2024-01-03", AmountAdded: 500, RemainingAmount: 500, RunningBalance: 1200, CreatedAt: base.Add(2 * time.Hour)},
	}

	summary := domain.LedgerSummary{
		TotalCredit:      1500,
		TotalDebit:       300,
		RemainingBalance: 1200,
	}

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID)).
					Times(1).
					Return(entries, summary, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Count            int                  `json:"count"`
					TotalCredit      float64              `json:"totalCredit"`
					TotalDebit       float64              `json:"totalDebit"`
					RemainingBalance float64              `json:"remainingBalance"`
					Entries          []domain.LedgerEntry `json:"entries"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if got.Count != len(entries) {
					t.Errorf("res.Data.Count=%v, want %v", got.Count, len(entries))
				}

				if got.RemainingBalance != summary.RemainingBalance {
					t.Errorf("res.Data.RemainingBalance=%v, want %v", got.RemainingBalance, summary.RemainingBalance)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(entries, got.Entries, compareCreatedAt); diff != "" {
					t.Errorf("res.Data.Entries mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "NoAuthorization",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name: "BankNotFound",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID)).
					Times(1).
					Return(nil, domain.LedgerSummary{}, domain.ErrBankNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrBankNotFound.Error(),
		},
		{
			name: "InternalServerError",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, email, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(testTraderID), gomock.Eq(testBankID)).
					Times(1).
					Return(nil, domain.LedgerSummary{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/traders/:traderId/banks/:bankId/entries", handler.List)

			tc.buildStubs(service)

			url := fmt.Sprintf("/traders/%d/banks/%d/entries", testTraderID, testBankID)

			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Count            int                  `json:"count"`
					TotalCredit      float64              `json:"totalCredit"`
					TotalDebit       float64              `json:"totalDebit"`
					RemainingBalance float64              `json:"remainingBalance"`
					Entries          []domain.LedgerEntry `json:"entries"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
