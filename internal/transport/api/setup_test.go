package api

import (
	"bytes"
	"io"
	"time"

	"github.com/fsdevblog/groph-cart/internal/logger"
	"github.com/fsdevblog/groph-cart/internal/service/tokens"
	"github.com/fsdevblog/groph-cart/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-cart/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая обвязка тестов хендлеров: роутер на моках сервисов.
type handlerSuite struct {
	suite.Suite
	router                  *gin.Engine
	mockCartService         *mocks.MockCartServicer
	mockCreditService       *mocks.MockCreditServicer
	mockCancellationService *mocks.MockCancellationServicer
	jwtSecret               []byte
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockCartService = mocks.NewMockCartServicer(mockCtrl)
	s.mockCreditService = mocks.NewMockCreditServicer(mockCtrl)
	s.mockCancellationService = mocks.NewMockCancellationServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:              logger.New(io.Discard),
		CartService:         s.mockCartService,
		CreditService:       s.mockCreditService,
		CancellationService: s.mockCancellationService,
		JWTSecretKey:        s.jwtSecret,
	})
}

func (s *handlerSuite) token(userID int64, cashier bool) string {
	token, err := tokens.GenerateUserJWT(userID, cashier, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// request выполняет запрос к роутеру и возвращает статус и тело ответа.
func (s *handlerSuite) request(method, url, token string, payload []byte) (int, []byte) {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
	}
	if payload != nil {
		args.Body = bytes.NewReader(payload)
	}
	var reqOpts []func(*testutils.RequestOptions)
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithBearer(token))
	}
	reqOpts = append(reqOpts, testutils.WithJSON())

	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, body
}

func (s *handlerSuite) decode(body []byte, v any) {
	s.Require().NoError(json.Unmarshal(body, v))
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
