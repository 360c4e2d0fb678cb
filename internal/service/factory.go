package service

import (
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	CreditService       *CreditService
	CartService         *CartService
	CancellationService *CancellationService
}

// Stores внешние хранилища сервисов. Один объект может реализовывать несколько интерфейсов.
type Stores struct {
	Cache       BalanceCache
	Preferences CreditPreferenceStore
	Carts       CartStore
}

func Factory(unitOfWork uow.UOW, stores Stores, settings Settings, l *logrus.Logger) (*AppServices, error) {
	authorizer := ContextAuthorizer{}

	creditService, creditErr := NewCreditService(unitOfWork, CreditServiceDeps{
		Cache:       stores.Cache,
		Preferences: stores.Preferences,
		Authorizer:  authorizer,
		Settings:    settings,
		Logger:      l.WithField("component", "credit_service"),
	})
	if creditErr != nil {
		return nil, errors.Wrap(creditErr, "service factory: credit service")
	}

	cartService, cartErr := NewCartService(unitOfWork, creditService, CartServiceDeps{
		Carts:       stores.Carts,
		Preferences: stores.Preferences,
		Authorizer:  authorizer,
		Settings:    settings,
		Logger:      l.WithField("component", "cart_service"),
	})
	if cartErr != nil {
		return nil, errors.Wrap(cartErr, "service factory: cart service")
	}

	return &AppServices{
		CreditService: creditService,
		CartService:   cartService,
		CancellationService: NewCancellationService(
			unitOfWork,
			creditService,
			settings,
			l.WithField("component", "cancellation_service"),
		),
	}, nil
}
