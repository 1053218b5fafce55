//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"boilerbites/internal/domain/order"
	"boilerbites/internal/handler/api"
	resdto "boilerbites/internal/handler/dto/response"
	"boilerbites/internal/usecase/commands"
	"boilerbites/tests/common/httptest"
	"boilerbites/tests/common/testutil"
	commandsmock "boilerbites/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClaimCommands
	handler      *api.ClaimHandler
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.handler = api.NewClaimHandler(s.mockCommands)

	s.router.POST("/listings/:id/claim", s.handler.Claim)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

func (s *ClaimHandlerTestSuite) claimResult() *commands.ClaimResult {
	ord, err := order.NewOrder("Jordan Lee", "jlee@purdue.edu", "Hawaiian Classic Poke", "zen",
		time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC))
	require.NoError(s.T(), err)
	return &commands.ClaimResult{Order: *ord, EmailDelivered: true}
}

func (s *ClaimHandlerTestSuite) requestBody() map[string]any {
	return map[string]any{
		"student_name":  "Jordan Lee",
		"student_email": "jlee@purdue.edu",
	}
}

func (s *ClaimHandlerTestSuite) TestClaim() {
	url := "/listings/1234567890/claim"

	s.Run("success: returns 200 with the order", func() {
		result := s.claimResult()
		s.mockCommands.EXPECT().Claim(gomock.Any(), gomock.Any(), "Jordan Lee", "jlee@purdue.edu").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody())

		var resp resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
		s.True(resp.EmailDelivered)
		s.Empty(resp.Advisory)
		s.Equal("Jordan Lee", resp.Order.StudentName)
		s.Equal(result.Order.DisplayCode(), resp.Order.DisplayCode)
	})

	s.Run("success with advisory: email failure does not fail the claim", func() {
		result := s.claimResult()
		result.EmailDelivered = false
		result.Advisory = commands.EmailAdvisory
		s.mockCommands.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody())

		var resp resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Success)
		s.False(resp.EmailDelivered)
		s.Equal(commands.EmailAdvisory, resp.Advisory)
	})

	s.Run("conflict: returns 409 when the listing is already gone", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrItemUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Item not available")

		var body struct {
			Detail struct {
				Success bool `json:"success"`
			} `json:"detail"`
		}
		require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
		s.False(body.Detail.Success)
	})

	s.Run("validation: returns 422 on a domain rejection", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("bad request: malformed listing ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings/not-a-snowflake/claim", s.requestBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing ID format")
	})

	s.Run("bad request: binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing student_name", mutate: testutil.Field("student_name", nil)},
			{name: "missing student_email", mutate: testutil.Field("student_email", nil)},
			{name: "malformed student_email", mutate: testutil.Field("student_email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.requestBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}
