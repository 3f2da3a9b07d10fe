package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cryptofolio/internal/services"
)

// NewRouter registers every API route over service.
func NewRouter(service services.PortfolioService, logger *zap.Logger) http.Handler {
	transactionHandler := NewTransactionHandler(service, logger)
	portfolioHandler := NewPortfolioHandler(service)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "cryptofolio",
		})
	}).Methods(http.MethodGet)

	router.HandleFunc("/api/transactions", transactionHandler.HandleListTransactions).Methods(http.MethodGet)
	router.HandleFunc("/api/transactions", transactionHandler.HandleCreateTransaction).Methods(http.MethodPost)
	router.HandleFunc("/api/transactions/{id}", transactionHandler.HandleDeleteTransaction).Methods(http.MethodDelete)
	router.HandleFunc("/api/portfolio/summary", portfolioHandler.HandleSummary).Methods(http.MethodGet)
	router.HandleFunc("/api/portfolio/overview", portfolioHandler.HandleOverview).Methods(http.MethodGet)
	router.HandleFunc("/api/coins", portfolioHandler.HandleCoins).Methods(http.MethodGet)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	return corsMiddleware(router)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
