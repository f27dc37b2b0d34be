package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unlock sets up the repayment password and returns the header for an
// unlocked session.
func (suite *TestSuiteStandard) unlock(t *testing.T) map[string]string {
	r := suite.request(t, http.MethodPost, "http://example.com/v1/repayments/session", v1.RepaymentUnlock{Setup: "geheim"})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.Response[v1.RepaymentSession]
	test.DecodeResponse(t, &r, &response)
	require.NotEmpty(t, response.Data.Token)

	return map[string]string{v1.RepaymentSessionHeader: response.Data.Token}
}

func (suite *TestSuiteStandard) TestRepaymentsSession() {
	var session v1.Response[v1.RepaymentSession]

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/repayments/session", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &session)
	assert.False(suite.T(), session.Data.PasswordSet)
	assert.False(suite.T(), session.Data.Unlocked)

	// Without password and setup value
	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/repayments/session", v1.RepaymentUnlock{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Empty(suite.T(), r.Header().Values("Set-Cookie"), "no cookie for failed unlocks")

	header := suite.unlock(suite.T())

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/repayments/session", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &session)
	assert.True(suite.T(), session.Data.PasswordSet)
	assert.True(suite.T(), session.Data.Unlocked)

	tests := []struct {
		name   string
		unlock v1.RepaymentUnlock
		status int
	}{
		{"Wrong password", v1.RepaymentUnlock{Password: "gehiem"}, http.StatusBadRequest},
		{"Setup does not replace the password", v1.RepaymentUnlock{Setup: "nieuw"}, http.StatusBadRequest},
		{"Correct password", v1.RepaymentUnlock{Password: "geheim"}, http.StatusCreated},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/repayments/session", tt.unlock)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Locking ends the session
	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/repayments/session", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/repayments", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRepaymentsLocked() {
	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/repayments", ""},
		{http.MethodPost, "http://example.com/v1/repayments", []v1.RepaymentEditable{{Person: "Sam", Amount: decimal.NewFromFloat(10), Type: models.RepaymentOwedToMe}}},
		{http.MethodGet, "http://example.com/v1/repayments/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", ""},
		{http.MethodDelete, "http://example.com/v1/repayments/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", ""},
		{http.MethodPost, "http://example.com/v1/repayments/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e/paid", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.path, tt.body, map[string]string{v1.RepaymentSessionHeader: "not-a-session"})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, ledger.ErrRepaymentLocked.Error(), response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRepaymentsUnlocked() {
	header := suite.unlock(suite.T())

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/repayments", []v1.RepaymentEditable{
		{Person: "Sam", Amount: decimal.NewFromFloat(25), Type: models.RepaymentOwedToMe, Description: "Concert"},
		{Person: "Alex", Amount: decimal.NewFromFloat(10), Type: models.RepaymentOwedByMe, Date: types.NewDate(2024, 3, 1)},
		{Person: "", Amount: decimal.NewFromFloat(10), Type: models.RepaymentOwedByMe},
	}, header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var created v1.CreateResponse[v1.Repayment]
	test.DecodeResponse(suite.T(), &r, &created)
	require.Len(suite.T(), created.Data, 3)
	require.NotNil(suite.T(), created.Data[0].Data)
	assert.Nil(suite.T(), created.Data[2].Data)
	assert.NotNil(suite.T(), created.Data[2].Error)

	sam := *created.Data[0].Data
	assert.Equal(suite.T(), types.NewDate(2024, 3, 15), sam.Date, "the date defaults to today")

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/repayments?type=owed-to-me", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ListResponse[v1.Repayment]
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "Sam", list.Data[0].Person)

	r = suite.request(suite.T(), http.MethodPatch, sam.Links.Self, map[string]any{"amount": "30"}, header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.Response[v1.Repayment]
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), decimal.NewFromFloat(30).Equal(updated.Data.Amount))
	assert.Equal(suite.T(), "Concert", updated.Data.Description)

	r = suite.request(suite.T(), http.MethodPost, sam.Links.Paid, "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, sam.Links.Self, "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRepaymentsCookie() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/repayments/session", v1.RepaymentUnlock{Setup: "geheim"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	cookies := r.Result().Cookies()
	require.Len(suite.T(), cookies, 1)
	assert.True(suite.T(), cookies[0].HttpOnly)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/repayments", "", map[string]string{
		"Cookie": cookies[0].Name + "=" + cookies[0].Value,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
