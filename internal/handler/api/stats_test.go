//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"boilerbites/internal/handler/api"
	resdto "boilerbites/internal/handler/dto/response"
	"boilerbites/internal/usecase/queries"
	"boilerbites/tests/common/httptest"
	queriesmock "boilerbites/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStatsQueries
	handler     *api.StatsHandler
}

func (s *StatsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.handler = api.NewStatsHandler(s.mockQueries)

	s.router.GET("/stats/kitchen", s.handler.Kitchen)
	s.router.GET("/stats/student", s.handler.Student)
	s.router.GET("/orders", s.handler.Orders)
	s.router.GET("/flags", s.handler.Flags)
}

func (s *StatsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) TestKitchen() {
	s.mockQueries.EXPECT().Kitchen(gomock.Any()).Return(queries.KitchenStatsView{
		RevenueRecovered: decimal.RequireFromString("456.475"),
		WasteDiverted:    13,
		ActiveUsers:      85,
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats/kitchen", nil)

	var resp resdto.KitchenStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.True(resp.RevenueRecovered.Equal(decimal.RequireFromString("456.475")))
	s.Equal(13, resp.WasteDiverted)
	s.Equal(85, resp.ActiveUsers)
}

func (s *StatsHandlerTestSuite) TestStudent() {
	s.mockQueries.EXPECT().Student(gomock.Any()).Return(queries.StudentStatsView{
		Points:   145,
		CO2Saved: decimal.RequireFromString("7.0"),
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats/student", nil)

	var resp resdto.StudentStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(145, resp.Points)
	s.True(resp.CO2Saved.Equal(decimal.RequireFromString("7.0")))
}

func (s *StatsHandlerTestSuite) TestOrders() {
	s.mockQueries.EXPECT().Orders(gomock.Any()).Return([]queries.OrderView{
		{
			ID:           uuid.New(),
			DisplayCode:  "#BB-512",
			StudentName:  "Jordan Lee",
			StudentEmail: "jlee@purdue.edu",
			ItemName:     "Hawaiian Classic Poke",
			VenueID:      "zen",
			Timestamp:    time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC),
		},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil)

	var resp []resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("#BB-512", resp[0].DisplayCode)
	s.Equal("zen", resp[0].VenueID)
}

func (s *StatsHandlerTestSuite) TestFlags() {
	s.mockQueries.EXPECT().Flags(gomock.Any()).Return(queries.FlagsView{
		PushNotification: true,
		ClaimSuccess:     false,
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flags", nil)

	var resp resdto.FlagsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.True(resp.PushNotification)
	s.False(resp.ClaimSuccess)
}
