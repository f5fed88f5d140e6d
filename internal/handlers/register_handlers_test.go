package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/handlers"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
	"github.com/finbooks/finbooks_backend/internal/repositories/memory"
)

// RouterTestSuite drives the full HTTP surface against the in-memory stores,
// so binding, validation and error mapping are all exercised together.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
}

func (suite *RouterTestSuite) SetupTest() {
	repos := &portsrepo.RepositoryProvider{
		DocumentRepo: memory.NewDocumentRepository(),
		JournalRepo:  memory.NewJournalRepository(),
	}
	container := services.NewServiceContainer(repos)

	suite.router = gin.New()
	// Swagger is disabled so the route table stays minimal under test.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *RouterTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

// --- Test Cases ---

func (suite *RouterTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RouterTestSuite) TestComputeLine() {
	w := suite.request(http.MethodPost, "/api/v1/calc/line", gin.H{
		"quantity":            "10",
		"unitPrice":           "100",
		"taxRatePercent":      "10",
		"discountRatePercent": "10",
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var amounts map[string]string
	suite.decode(w, &amounts)
	suite.Equal("1000", amounts["subtotal"])
	suite.Equal("100", amounts["discount"])
	suite.Equal("90", amounts["tax"])
	suite.Equal("990", amounts["total"])
}

func (suite *RouterTestSuite) TestComputeLineBlankFieldsCoerce() {
	w := suite.request(http.MethodPost, "/api/v1/calc/line", gin.H{
		"quantity":  "2",
		"unitPrice": "",
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var amounts map[string]string
	suite.decode(w, &amounts)
	suite.Equal("0", amounts["total"])
}

func (suite *RouterTestSuite) TestComputeDocumentTotals() {
	w := suite.request(http.MethodPost, "/api/v1/calc/document-totals", gin.H{
		"lines": []gin.H{
			{"description": "parts", "quantity": "2", "unitPrice": "50"},
			{"description": "labour", "quantity": "1", "unitPrice": "30", "taxRatePercent": "10"},
		},
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ComputeDocumentTotalsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Lines, 2)
	suite.Equal("133", resp.Totals.Total.String())
}

func createDocumentBody() gin.H {
	return gin.H{
		"type":           "INVOICE",
		"number":         "INV-2026-000001",
		"counterpartyID": "cust-42",
		"date":           "2026-04-01T00:00:00Z",
		"lines": []gin.H{
			{"description": "consulting", "quantity": "1", "unitPrice": "500"},
		},
	}
}

func (suite *RouterTestSuite) TestDocumentLifecycle() {
	// Create.
	w := suite.request(http.MethodPost, "/api/v1/documents", createDocumentBody())
	suite.Require().Equal(http.StatusCreated, w.Code)
	var doc dto.DocumentResponse
	suite.decode(w, &doc)
	suite.NotEmpty(doc.DocumentID)
	suite.Equal("500", doc.Total.String())

	// Submit.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/submit", doc.DocumentID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var submit dto.SubmitResultResponse
	suite.decode(w, &submit)
	suite.True(submit.Submitted)

	// Pay.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/pay", doc.DocumentID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	// A PAID document can no longer be edited.
	w = suite.request(http.MethodPut, fmt.Sprintf("/api/v1/documents/%s", doc.DocumentID), gin.H{"notes": "late"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RouterTestSuite) TestDocumentSubmitViolations() {
	body := createDocumentBody()
	body["lines"] = []gin.H{{"description": "", "quantity": "0", "unitPrice": "10"}}

	w := suite.request(http.MethodPost, "/api/v1/documents", body)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var doc dto.DocumentResponse
	suite.decode(w, &doc)

	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/submit", doc.DocumentID), nil)
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	var submit dto.SubmitResultResponse
	suite.decode(w, &submit)
	suite.False(submit.Submitted)
	suite.Contains(submit.Violations, "line 1: description is required")
	suite.Contains(submit.Violations, "line 1: quantity must be greater than zero")
}

func (suite *RouterTestSuite) TestDocumentBadNumberRejectedAtBinding() {
	body := createDocumentBody()
	body["number"] = "INVOICE-1"

	w := suite.request(http.MethodPost, "/api/v1/documents", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestDocumentNotFound() {
	w := suite.request(http.MethodGet, "/api/v1/documents/nope", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestDocumentListPagination() {
	for i := 1; i <= 3; i++ {
		body := createDocumentBody()
		body["number"] = fmt.Sprintf("INV-2026-%06d", i)
		w := suite.request(http.MethodPost, "/api/v1/documents", body)
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := suite.request(http.MethodGet, "/api/v1/documents?limit=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListDocumentsResponse
	suite.decode(w, &page)
	suite.Len(page.Documents, 2)
	suite.Require().NotEmpty(page.NextToken)

	w = suite.request(http.MethodGet, "/api/v1/documents?limit=2&pageToken="+page.NextToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var rest dto.ListDocumentsResponse
	suite.decode(w, &rest)
	suite.Len(rest.Documents, 1)
	suite.Empty(rest.NextToken)
}

func (suite *RouterTestSuite) TestDocumentListBadPageToken() {
	w := suite.request(http.MethodGet, "/api/v1/documents?pageToken=!!!", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestJournalLifecycle() {
	// Create with balanced lines.
	w := suite.request(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"date":        "2026-03-15T00:00:00Z",
		"reference":   "JE-2026-000042",
		"description": "March rent",
		"lines": []gin.H{
			{"accountID": "acct-rent", "debit": "100"},
			{"accountID": "acct-cash", "credit": "100"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var journal dto.JournalResponse
	suite.decode(w, &journal)

	// Validate reports clean.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%s/validate", journal.JournalID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	// Post.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%s/post", journal.JournalID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var post dto.PostResultResponse
	suite.decode(w, &post)
	suite.True(post.Posted)

	// Posting again is a state conflict.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%s/post", journal.JournalID), nil)
	suite.Equal(http.StatusConflict, w.Code)

	// Void.
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%s/void", journal.JournalID), nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestJournalPostUnbalanced() {
	w := suite.request(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"date":        "2026-03-15T00:00:00Z",
		"reference":   "JE-2026-000043",
		"description": "typo entry",
		"lines": []gin.H{
			{"accountID": "acct-a", "debit": "100"},
			{"accountID": "acct-b", "credit": "90"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var journal dto.JournalResponse
	suite.decode(w, &journal)

	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%s/post", journal.JournalID), nil)
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	var post dto.PostResultResponse
	suite.decode(w, &post)
	suite.False(post.Posted)
	suite.NotEmpty(post.Violations)
}

func (suite *RouterTestSuite) TestFinanceEndpoints() {
	w := suite.request(http.MethodPost, "/api/v1/finance/interest/simple", gin.H{
		"principal": 1000, "ratePercent": 5, "years": 2,
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	var result dto.ResultResponse
	suite.decode(w, &result)
	suite.Equal(100.0, result.Result)

	w = suite.request(http.MethodPost, "/api/v1/finance/npv", gin.H{
		"initialInvestment": 1000, "cashFlows": []float64{400, 400}, "ratePercent": 0,
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &result)
	suite.Equal(-200.0, result.Result)

	w = suite.request(http.MethodPost, "/api/v1/finance/depreciation", gin.H{
		"method": "STRAIGHT_LINE", "cost": 10000, "salvage": 1000, "usefulLife": 9,
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &result)
	suite.Equal(1000.0, result.Result)

	// The oneof binding rejects unknown methods before the service sees them.
	w = suite.request(http.MethodPost, "/api/v1/finance/depreciation", gin.H{
		"method": "MACRS", "cost": 10000,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestDebtPlanEndpoint() {
	w := suite.request(http.MethodPost, "/api/v1/finance/debt-plan", gin.H{
		"strategy": "AVALANCHE",
		"payment":  5000,
		"debts": []gin.H{
			{"name": "card", "balance": 4500, "interestRatePercent": 22.9},
			{"name": "car", "balance": 12000, "interestRatePercent": 6.5},
		},
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var plan dto.DebtPlanResponse
	suite.decode(w, &plan)
	suite.Equal("AVALANCHE", plan.Strategy)
	suite.Require().Len(plan.Allocations, 2)
	suite.Equal("card", plan.Allocations[0].Name)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
