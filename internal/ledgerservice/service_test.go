package ledgerservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/randompkg"
)

const (
	testTraderID int32 = 7
	testBankID   int32 = 3
)

func testBank() domain.Bank {
	return domain.Bank{
		ID:        testBankID,
		TraderID:  testTraderID,
		Name:      randompkg.Name() + " Bank",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func testEntry(id int64, date string, added, withdrawn float64, createdAt time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:              id,
		BankID:          testBankID,
		Date:            date,
		AmountAdded:     added,
		AmountWithdrawn: withdrawn,
		RemainingAmount: added - withdrawn,
		CreatedAt:       createdAt,
	}
}

func TestList(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		testEntry(1, "2024-01-01", 1000, 0, base),
		testEntry(2, "2024-01-02", 0, 300, base.Add(time.Hour)),
		testEntry(3, "2024-01-03", 500, 0, base.Add(2*time.Hour)),
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, banks *MockBankRepo)
		checkResponse func(got []domain.LedgerEntry, summary domain.LedgerSummary, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(entries, nil)
			},
			checkResponse: func(got []domain.LedgerEntry, summary domain.LedgerSummary, err error) {
				require.NoError(t, err)
				require.Len(t, got, 3)

				require.InDelta(t, 1000, got[0].RunningBalance, 0.01)
				require.InDelta(t, 700, got[1].RunningBalance, 0.01)
				require.InDelta(t, 1200, got[2].RunningBalance, 0.01)

				require.InDelta(t, 1500, summary.TotalCredit, 0.01)
				require.InDelta(t, 300, summary.TotalDebit, 0.01)
				require.InDelta(t, 1200, summary.RemainingBalance, 0.01)
				require.InDelta(t, got[2].RunningBalance, summary.RemainingBalance, 0.01)
			},
		},
		{
			name: "BankNotFound",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(domain.Bank{}, domain.ErrBankNotFound)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got []domain.LedgerEntry, summary domain.LedgerSummary, err error) {
				require.EqualError(t, err, domain.ErrBankNotFound.Error())
				require.Empty(t, got)
			},
		},
		{
			name: "BankOwnedByAnotherTrader",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				other := testBank()
				other.TraderID = testTraderID + 1

				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(other, nil)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got []domain.LedgerEntry, summary domain.LedgerSummary, err error) {
				require.EqualError(t, err, domain.ErrBankNotFound.Error())
				require.Empty(t, got)
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(got []domain.LedgerEntry, summary domain.LedgerSummary, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			banks := NewMockBankRepo(ctrl)
			service := New(repo, banks)

			tc.buildStubs(repo, banks)

			got, summary, err := service.List(context.Background(), testTraderID, testBankID)
			tc.checkResponse(got, summary, err)
		})
	}
}

func TestCreate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	arg := CreateParams{
		Date:            "2024-01-02",
		ReferenceType:   "cash",
		AmountAdded:     500,
		AmountWithdrawn: 0,
		ReferencePerson: randompkg.Name(),
	}

	created := testEntry(2, arg.Date, arg.AmountAdded, arg.AmountWithdrawn, base.Add(time.Hour))

	testCases := []struct {
		name          string
		arg           CreateParams
		buildStubs    func(repo *MockRepo, banks *MockBankRepo)
		checkResponse func(got domain.LedgerEntry, err error)
	}{
		{
			name: "OK",
			arg:  arg,
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Eq(domain.CreateLedgerEntryParams{
					BankID:          testBankID,
					Date:            arg.Date,
					ReferenceType:   arg.ReferenceType,
					AmountAdded:     arg.AmountAdded,
					AmountWithdrawn: arg.AmountWithdrawn,
					ReferencePerson: arg.ReferencePerson,
					RemainingAmount: 500,
				})).
					Times(1).
					Return(created, nil)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return([]domain.LedgerEntry{
						testEntry(1, "2024-01-01", 1000, 0, base),
						created,
					}, nil)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.NoError(t, err)
				require.Equal(t, created.ID, got.ID)
				require.InDelta(t, 1500, got.RunningBalance, 0.01)
			},
		},
		{
			name: "NoAmount",
			arg: CreateParams{
				Date: "2024-01-02",
			},
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.EqualError(t, err, domain.ErrNoAmount.Error())
				require.Empty(t, got)
			},
		},
		{
			name: "BankNotFound",
			arg:  arg,
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(domain.Bank{}, domain.ErrBankNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.EqualError(t, err, domain.ErrBankNotFound.Error())
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			banks := NewMockBankRepo(ctrl)
			service := New(repo, banks)

			tc.buildStubs(repo, banks)

			got, err := service.Create(context.Background(), testTraderID, testBankID, tc.arg)
			tc.checkResponse(got, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	existing := testEntry(2, "2024-01-02", 0, 300, base.Add(time.Hour))

	newAdded := 450.0
	zero := 0.0

	testCases := []struct {
		name          string
		arg           domain.UpdateLedgerEntryParams
		buildStubs    func(repo *MockRepo, banks *MockBankRepo)
		checkResponse func(got domain.LedgerEntry, err error)
	}{
		{
			name: "MergesAndRecomputes",
			arg: domain.UpdateLedgerEntryParams{
				AmountAdded: &newAdded,
			},
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(existing, nil)

				merged := domain.CreateLedgerEntryParams{
					BankID:          testBankID,
					Date:            existing.Date,
					AmountAdded:     newAdded,
					AmountWithdrawn: existing.AmountWithdrawn,
					RemainingAmount: newAdded - existing.AmountWithdrawn,
				}
				updated := testEntry(existing.ID, existing.Date, newAdded, existing.AmountWithdrawn, existing.CreatedAt)

				repo.EXPECT().Update(gomock.Any(), gomock.Eq(existing.ID), gomock.Eq(merged)).
					Times(1).
					Return(updated, nil)
				repo.EXPECT().ListByBank(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return([]domain.LedgerEntry{updated}, nil)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.NoError(t, err)
				require.InDelta(t, 150, got.RemainingAmount, 0.01)
				require.InDelta(t, 150, got.RunningBalance, 0.01)
			},
		},
		{
			name: "BothAmountsZeroed",
			arg: domain.UpdateLedgerEntryParams{
				AmountAdded:     &zero,
				AmountWithdrawn: &zero,
			},
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(existing, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.EqualError(t, err, domain.ErrNoAmount.Error())
				require.Empty(t, got)
			},
		},
		{
			name: "EntryBelongsToAnotherBank",
			arg: domain.UpdateLedgerEntryParams{
				AmountAdded: &newAdded,
			},
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				foreign := existing
				foreign.BankID = testBankID + 1

				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(foreign, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.LedgerEntry, err error) {
				require.EqualError(t, err, domain.ErrLedgerEntryNotFound.Error())
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			banks := NewMockBankRepo(ctrl)
			service := New(repo, banks)

			tc.buildStubs(repo, banks)

			got, err := service.Update(context.Background(), testTraderID, testBankID, existing.ID, tc.arg)
			tc.checkResponse(got, err)
		})
	}
}

func TestDelete(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := testEntry(2, "2024-01-02", 0, 300, base)

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo, banks *MockBankRepo)
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(existing, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(nil)
			},
		},
		{
			name: "EntryNotFound",
			buildStubs: func(repo *MockRepo, banks *MockBankRepo) {
				banks.EXPECT().Get(gomock.Any(), gomock.Eq(testBankID)).
					Times(1).
					Return(testBank(), nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(existing.ID)).
					Times(1).
					Return(domain.LedgerEntry{}, domain.ErrLedgerEntryNotFound)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrLedgerEntryNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			banks := NewMockBankRepo(ctrl)
			service := New(repo, banks)

			tc.buildStubs(repo, banks)

			err := service.Delete(context.Background(), testTraderID, testBankID, existing.ID)
			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}
