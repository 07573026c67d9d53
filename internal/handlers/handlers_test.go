package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
	domainmocks "github.com/avc/ecocart-rewards/internal/domain/mocks"
	"github.com/avc/ecocart-rewards/internal/service"
)

// walletServiceStub собирает чтение кошелька и обмен наград в один сервис,
// как это делает диспетчер в рабочей сборке.
type walletServiceStub struct {
	*domainmocks.WalletReaderMock
	*domainmocks.EventDispatcherMock
}

func newWalletServiceStub(t *testing.T) walletServiceStub {
	return walletServiceStub{
		WalletReaderMock:    domainmocks.NewWalletReaderMock(t),
		EventDispatcherMock: domainmocks.NewEventDispatcherMock(t),
	}
}

func routeRequest(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestEventsHandler_DailyLogin(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	t.Run("Awarded", func(t *testing.T) {
		tx := &domain.CoinTransaction{ID: "tx-1", Type: domain.TransactionTypeEarned, Amount: 10, Reason: "Daily Login Bonus"}
		mockService.EXPECT().DailyLogin(mock.Anything).Return(tx, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/events/login", nil)
		w := httptest.NewRecorder()

		handler.DailyLogin(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result dailyLoginResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.True(t, result.Awarded)
		assert.Equal(t, 10, result.Transaction.Amount)
	})

	t.Run("Already claimed today", func(t *testing.T) {
		mockService.EXPECT().DailyLogin(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/events/login", nil)
		w := httptest.NewRecorder()

		handler.DailyLogin(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result dailyLoginResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.False(t, result.Awarded)
		assert.Nil(t, result.Transaction)
	})
}

func TestEventsHandler_CartItemAdded(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().CartItemAdded(mock.Anything, domain.CartEvent{
			ProductID:   "prod-1",
			ProductName: "Bamboo Toothbrush",
			EcoScore:    5,
		}).Return(15, nil).Once()

		body := `{"product_id":"prod-1","product_name":"Bamboo Toothbrush","eco_score":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/cart", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CartItemAdded(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result coinsAwardedResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 15, result.CoinsAwarded)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/events/cart", bytes.NewBufferString(`{"eco_score":}`))
		w := httptest.NewRecorder()

		handler.CartItemAdded(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventsHandler_AnalysisCompleted(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		outcome := &domain.AnalysisOutcome{
			Result:       domain.AnalysisResult{ProductName: "Oat Milk", Co2FootprintKg: 2.5, SustainabilityScore: 4},
			CoinsAwarded: 25,
			StreakDays:   1,
		}
		mockService.EXPECT().AnalysisCompleted(mock.Anything, domain.AnalysisRequest{
			Prompt:     "Oat Milk",
			SourceType: "url",
		}).Return(outcome, nil).Once()

		body := `{"prompt":"Oat Milk","source_type":"url"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/analysis", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AnalysisCompleted(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.AnalysisOutcome
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 25, result.CoinsAwarded)
		assert.Equal(t, "Oat Milk", result.Result.ProductName)
	})

	t.Run("Empty request", func(t *testing.T) {
		mockService.EXPECT().AnalysisCompleted(mock.Anything, domain.AnalysisRequest{SourceType: "url"}).
			Return(nil, service.ErrEmptyAnalysisRequest).Once()

		body := `{"source_type":"url"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/analysis", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AnalysisCompleted(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventsHandler_QuizCompleted(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().QuizCompleted(mock.Anything, domain.QuizEvent{
			QuizID:         "quiz-1",
			Title:          "Recycling Basics",
			Score:          5,
			TotalQuestions: 5,
		}).Return(35, nil).Once()

		body := `{"quiz_id":"quiz-1","title":"Recycling Basics","score":5,"total_questions":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/quiz", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.QuizCompleted(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result coinsAwardedResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 35, result.CoinsAwarded)
	})

	t.Run("Invalid result", func(t *testing.T) {
		mockService.EXPECT().QuizCompleted(mock.Anything, mock.Anything).
			Return(0, service.ErrInvalidQuizResult).Once()

		body := `{"quiz_id":"quiz-1","score":9,"total_questions":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/quiz", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.QuizCompleted(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestEventsHandler_FeedbackSubmitted(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	mockService.EXPECT().FeedbackSubmitted(mock.Anything, domain.FeedbackEvent{
		FeedbackID: "fb-1",
		Category:   "bug_report",
		Title:      "Scanner freezes",
	}).Return(15, nil).Once()

	body := `{"feedback_id":"fb-1","category":"bug_report","title":"Scanner freezes"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/feedback", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.FeedbackSubmitted(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result coinsAwardedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 15, result.CoinsAwarded)
}

func TestEventsHandler_ProfileCompleted(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockService, logger)

	mockService.EXPECT().ProfileCompleted(mock.Anything).Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/events/profile", nil)
	w := httptest.NewRecorder()

	handler.ProfileCompleted(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result profileCompletedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.True(t, result.Unlocked)
}

func TestWalletHandler_GetWallet(t *testing.T) {
	stub := newWalletServiceStub(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(stub, logger)

	view := &domain.WalletView{
		Balance:    120,
		StreakDays: 3,
		Counters:   map[string]float64{domain.CounterProductsAnalyzed: 5},
	}
	stub.WalletReaderMock.EXPECT().Wallet(mock.Anything).Return(view).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
	w := httptest.NewRecorder()

	handler.GetWallet(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.WalletView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 120, result.Balance)
	assert.Equal(t, 3, result.StreakDays)
}

func TestWalletHandler_GetTransactions(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		transactions := []domain.CoinTransaction{
			{ID: "tx-1", Type: domain.TransactionTypeEarned, Amount: 10, Reason: "Daily Login Bonus"},
		}
		stub.WalletReaderMock.EXPECT().Transactions(mock.Anything).Return(transactions).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/wallet/transactions", nil)
		w := httptest.NewRecorder()

		handler.GetTransactions(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []domain.CoinTransaction
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 1)
		assert.Equal(t, "tx-1", result[0].ID)
	})

	t.Run("No transactions", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		stub.WalletReaderMock.EXPECT().Transactions(mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/wallet/transactions", nil)
		w := httptest.NewRecorder()

		handler.GetTransactions(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestWalletHandler_Redeem(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		reward := &domain.CoinReward{ID: "reward-plant-tree", Name: "Plant a Tree", Cost: 100}
		stub.EventDispatcherMock.EXPECT().RedeemReward(mock.Anything, "reward-plant-tree").Return(reward, nil).Once()

		body := `{"reward_id":"reward-plant-tree"}`
		req := httptest.NewRequest(http.MethodPost, "/api/wallet/redeem", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Redeem(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.CoinReward
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "reward-plant-tree", result.ID)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		stub.EventDispatcherMock.EXPECT().RedeemReward(mock.Anything, "reward-plant-tree").
			Return(nil, domain.ErrInsufficientFunds).Once()

		body := `{"reward_id":"reward-plant-tree"}`
		req := httptest.NewRequest(http.MethodPost, "/api/wallet/redeem", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Redeem(w, req)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Unknown reward", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		stub.EventDispatcherMock.EXPECT().RedeemReward(mock.Anything, "reward-unknown").
			Return(nil, domain.ErrUnknownReward).Once()

		body := `{"reward_id":"reward-unknown"}`
		req := httptest.NewRequest(http.MethodPost, "/api/wallet/redeem", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Redeem(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		stub := newWalletServiceStub(t)
		handler := NewWalletHandler(stub, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/wallet/redeem", bytes.NewBufferString(`{"reward_id":}`))
		w := httptest.NewRecorder()

		handler.Redeem(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWalletHandler_GetRewards(t *testing.T) {
	stub := newWalletServiceStub(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(stub, logger)

	rewards := []domain.CoinReward{
		{ID: "reward-plant-tree", Name: "Plant a Tree", Cost: 100},
		{ID: "reward-eco-badge", Name: "Exclusive Eco Badge", Cost: 50},
	}
	stub.WalletReaderMock.EXPECT().Rewards(mock.Anything).Return(rewards).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/rewards", nil)
	w := httptest.NewRecorder()

	handler.GetRewards(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result []domain.CoinReward
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Len(t, result, 2)
}

func TestMarketplaceHandler_GetListings(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		listings := []*domain.MarketplaceListing{
			{ID: "mp-item-1", Title: "Refurbished Coffee Grinder", Status: domain.ListingStatusAvailable},
		}
		mockService.EXPECT().Listings(mock.Anything).Return(listings, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/marketplace/listings", nil)
		w := httptest.NewRecorder()

		handler.GetListings(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Empty", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().Listings(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/marketplace/listings", nil)
		w := httptest.NewRecorder()

		handler.GetListings(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestMarketplaceHandler_CreateListing(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		created := &domain.MarketplaceListing{
			ID:       "mp-item-abc",
			SellerID: domain.LocalUserID,
			Title:    "Canvas Tote Bag",
			Status:   domain.ListingStatusAvailable,
		}
		mockService.EXPECT().CreateListing(mock.Anything, domain.ListingEvent{
			Title: "Canvas Tote Bag",
			Price: 12.5,
		}).Return(created, nil).Once()

		body := `{"title":"Canvas Tote Bag","price":12.5}`
		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreateListing(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.MarketplaceListing
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "mp-item-abc", result.ID)
	})

	t.Run("Empty title", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().CreateListing(mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidListing).Once()

		body := `{"title":"  "}`
		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreateListing(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestMarketplaceHandler_PurchaseListing(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		sold := &domain.MarketplaceListing{ID: "mp-item-1", Status: domain.ListingStatusSold}
		mockService.EXPECT().PurchaseListing(mock.Anything, "mp-item-1").Return(sold, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-1/purchase", nil)
		w := httptest.NewRecorder()

		handler.PurchaseListing(w, routeRequest(req, "id", "mp-item-1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().PurchaseListing(mock.Anything, "mp-item-missing").
			Return(nil, domain.ErrListingNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-missing/purchase", nil)
		w := httptest.NewRecorder()

		handler.PurchaseListing(w, routeRequest(req, "id", "mp-item-missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Already sold", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().PurchaseListing(mock.Anything, "mp-item-1").
			Return(nil, domain.ErrListingNotAvailable).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-1/purchase", nil)
		w := httptest.NewRecorder()

		handler.PurchaseListing(w, routeRequest(req, "id", "mp-item-1"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Own listing", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().PurchaseListing(mock.Anything, "mp-item-1").
			Return(nil, domain.ErrOwnListing).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-1/purchase", nil)
		w := httptest.NewRecorder()

		handler.PurchaseListing(w, routeRequest(req, "id", "mp-item-1"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMarketplaceHandler_MarkSold(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		sold := &domain.MarketplaceListing{ID: "mp-item-1", SellerID: domain.LocalUserID, Status: domain.ListingStatusSold}
		mockService.EXPECT().MarkListingSold(mock.Anything, "mp-item-1").Return(sold, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-1/sold", nil)
		w := httptest.NewRecorder()

		handler.MarkSold(w, routeRequest(req, "id", "mp-item-1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Foreign listing", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewMarketplaceHandler(mockService, logger)

		mockService.EXPECT().MarkListingSold(mock.Anything, "mp-item-2").
			Return(nil, domain.ErrNotSellerListing).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/marketplace/listings/mp-item-2/sold", nil)
		w := httptest.NewRecorder()

		handler.MarkSold(w, routeRequest(req, "id", "mp-item-2"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReturnsHandler_GetPackages(t *testing.T) {
	mockService := domainmocks.NewEventDispatcherMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewReturnsHandler(mockService, logger)

	packages := []*domain.ReturnablePackage{
		{ID: "pkg-001", ProductName: "Organic Coffee Beans 1kg", Status: domain.PackageStatusAvailableForReturn},
	}
	mockService.EXPECT().Packages(mock.Anything).Return(packages, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/returns", nil)
	w := httptest.NewRecorder()

	handler.GetPackages(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReturnsHandler_InitiateReturn(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		initiated := &domain.ReturnablePackage{
			ID:                "pkg-001",
			Status:            domain.PackageStatusReturnInitiated,
			ReportedCondition: domain.ConditionGood,
			DropOffCode:       "QR-CB-8842",
		}
		mockService.EXPECT().InitiateReturn(mock.Anything, "pkg-001", domain.ConditionGood).
			Return(initiated, nil).Once()

		body := `{"condition":"GOOD"}`
		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-001/initiate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.InitiateReturn(w, routeRequest(req, "id", "pkg-001"))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.ReturnablePackage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, domain.PackageStatusReturnInitiated, result.Status)
	})

	t.Run("Invalid condition", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		mockService.EXPECT().InitiateReturn(mock.Anything, "pkg-001", domain.PackageCondition("SOMEWHAT_OK")).
			Return(nil, service.ErrInvalidCondition).Once()

		body := `{"condition":"SOMEWHAT_OK"}`
		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-001/initiate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.InitiateReturn(w, routeRequest(req, "id", "pkg-001"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Wrong state", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		mockService.EXPECT().InitiateReturn(mock.Anything, "pkg-001", domain.ConditionGood).
			Return(nil, domain.ErrInvalidPackageState).Once()

		body := `{"condition":"GOOD"}`
		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-001/initiate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.InitiateReturn(w, routeRequest(req, "id", "pkg-001"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestReturnsHandler_ProcessReturn(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Success", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		settled := &domain.ReturnablePackage{
			ID:                "pkg-001",
			Status:            domain.PackageStatusReturnCompleted,
			AssessedCondition: domain.ConditionGood,
			RewardCoins:       30,
		}
		mockService.EXPECT().ProcessReturn(mock.Anything, "pkg-001").Return(settled, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-001/process", nil)
		w := httptest.NewRecorder()

		handler.ProcessReturn(w, routeRequest(req, "id", "pkg-001"))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.ReturnablePackage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 30, result.RewardCoins)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		mockService.EXPECT().ProcessReturn(mock.Anything, "pkg-missing").
			Return(nil, domain.ErrPackageNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-missing/process", nil)
		w := httptest.NewRecorder()

		handler.ProcessReturn(w, routeRequest(req, "id", "pkg-missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Not initiated", func(t *testing.T) {
		mockService := domainmocks.NewEventDispatcherMock(t)
		handler := NewReturnsHandler(mockService, logger)

		mockService.EXPECT().ProcessReturn(mock.Anything, "pkg-001").
			Return(nil, domain.ErrInvalidPackageState).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/returns/pkg-001/process", nil)
		w := httptest.NewRecorder()

		handler.ProcessReturn(w, routeRequest(req, "id", "pkg-001"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestNotificationsHandler_GetNotifications(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("With notifications", func(t *testing.T) {
		notifier := service.NewNotifier()
		notifier.Notify("You earned 10 EcoCoin(s) for: Daily Login Bonus!", domain.AlertSeveritySuccess, true)

		handler := NewNotificationsHandler(notifier, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
		w := httptest.NewRecorder()

		handler.GetNotifications(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []domain.Notification
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 1)
		assert.Equal(t, "💰 You earned 10 EcoCoin(s) for: Daily Login Bonus!", result[0].Message)
	})

	t.Run("Empty feed", func(t *testing.T) {
		handler := NewNotificationsHandler(service.NewNotifier(), logger)

		req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
		w := httptest.NewRecorder()

		handler.GetNotifications(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
