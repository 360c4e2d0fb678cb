package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/service/mocks"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-cart/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type CreditServiceMockTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockCreditRepo *mocks.MockCreditRepository
	mockCache      *mocks.MockBalanceCache
	mockPrefs      *mocks.MockCreditPreferenceStore
	mockSettings   *mocks.MockSettings
	service        *CreditService
}

func TestCreditServiceMockSuite(t *testing.T) {
	suite.Run(t, new(CreditServiceMockTestSuite))
}

func (s *CreditServiceMockTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCreditRepo = mocks.NewMockCreditRepository(s.mockCtrl)
	s.mockCache = mocks.NewMockBalanceCache(s.mockCtrl)
	s.mockPrefs = mocks.NewMockCreditPreferenceStore(s.mockCtrl)
	s.mockSettings = mocks.NewMockSettings(s.mockCtrl)

	creditRepoName := uow.RepositoryName(repoargs.CreditRepoName)
	s.mockUOW.EXPECT().GetRepository(creditRepoName).Return(s.mockCreditRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(creditRepoName).Return(s.mockCreditRepo, nil).AnyTimes()
	// транзакция просто вызывает fn с моком TX
	s.mockUOW.EXPECT().
		DoLocked(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn uow.TxFunc) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewCreditService(s.mockUOW, CreditServiceDeps{
		Cache:       s.mockCache,
		Preferences: s.mockPrefs,
		Authorizer:  ContextAuthorizer{},
		Settings:    s.mockSettings,
		Logger:      logrus.NewEntry(l),
	})
	s.Require().NoError(err)
}

func (s *CreditServiceMockTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CreditServiceMockTestSuite) TestAddCredit_CacheFailureIsNotFatal() {
	gomock.InOrder(
		s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).
			Return([]repoargs.CurrencySum{{Currency: "EUR", Amount: dec("10")}}, nil),
		s.mockCreditRepo.EXPECT().LatestByUser(gomock.Any(), int64(1)).
			Return(&domain.LedgerEntry{ID: 1, Balance: dec("10"), Currency: "EUR"}, nil),
		s.mockCreditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
				s.True(dec("5").Equal(entry.Amount))
				s.True(dec("15").Equal(entry.Balance))
				s.Equal("EUR", entry.Currency)
				return &domain.LedgerEntry{ID: 2, Amount: entry.Amount, Balance: entry.Balance}, nil
			}),
		s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).
			Return([]repoargs.CurrencySum{{Currency: "EUR", Amount: dec("15")}}, nil),
	)
	s.mockCache.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(false, errors.New("redis is down"))

	snapshot, err := s.service.AddCredit(s.T().Context(), AddCreditArgs{UserID: 1, Amount: dec("5"), Currency: "EUR"})
	s.Require().NoError(err)
	s.Equal(int64(2), snapshot.LastEntryID)
	s.True(dec("15").Equal(snapshot.Credit))
}

func (s *CreditServiceMockTestSuite) TestAddCredit_MismatchAfterAppend() {
	gomock.InOrder(
		s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).Return(nil, nil),
		s.mockCreditRepo.EXPECT().LatestByUser(gomock.Any(), int64(1)).Return(nil, domain.ErrRecordNotFound),
		s.mockCreditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{ID: 1}, nil),
		// параллельная запись в обход блокировки
		s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).
			Return([]repoargs.CurrencySum{{Currency: "EUR", Amount: dec("25")}}, nil),
	)

	_, err := s.service.AddCredit(s.T().Context(), AddCreditArgs{UserID: 1, Amount: dec("5"), Currency: "EUR"})
	var integrityErr *domain.LedgerIntegrityError
	s.Require().ErrorAs(err, &integrityErr)
	s.Equal(stageAfterAppend, integrityErr.Stage)
}

func (s *CreditServiceMockTestSuite) TestGetBalance_StorageError() {
	storageErr := errors.New("connection reset")
	s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).Return(nil, storageErr)

	_, _, err := s.service.GetBalance(s.T().Context(), 1)
	s.Require().ErrorIs(err, storageErr)
}

func (s *CreditServiceMockTestSuite) TestCachedBalance_Hit() {
	cached := &domain.BalanceSnapshot{UserID: 1, Credit: dec("3"), Currency: "EUR"}
	s.mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(cached, nil)

	snapshot, err := s.service.CachedBalance(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Same(cached, snapshot)
}

func (s *CreditServiceMockTestSuite) TestCachedBalance_CacheErrorFallsBackToLedger() {
	s.mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("redis is down"))
	s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).
		Return([]repoargs.CurrencySum{{Currency: "EUR", Amount: dec("8.5")}}, nil)
	s.mockCreditRepo.EXPECT().LatestByUser(gomock.Any(), int64(1)).
		Return(&domain.LedgerEntry{ID: 4, Balance: dec("8.5")}, nil)
	s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis is down"))

	snapshot, err := s.service.CachedBalance(s.T().Context(), 1)
	s.Require().NoError(err)
	s.True(dec("8.5").Equal(snapshot.Credit))
	s.Equal(int64(4), snapshot.LastEntryID)
}

func (s *CreditServiceMockTestSuite) TestPrepareCheckout_PreferenceError() {
	s.mockPrefs.EXPECT().GetUseCredit(gomock.Any(), int64(1)).Return(nil, errors.New("redis is down"))
	s.mockCreditRepo.EXPECT().SumByUser(gomock.Any(), int64(1)).
		Return([]repoargs.CurrencySum{{Currency: "EUR", Amount: dec("30")}}, nil)
	s.mockSettings.EXPECT().RoundDiscounts().Return(false)

	comp, err := s.service.PrepareCheckout(s.T().Context(), CartData{Price: dec("100"), Currency: "EUR"}, 1, nil)
	s.Require().NoError(err)
	s.True(comp.UseCredit)
	s.True(dec("70").Equal(comp.Price))
}
