package handlers

import (
	"net/http"

	"github.com/tropicaldog17/cryptofolio/internal/models"
	"github.com/tropicaldog17/cryptofolio/internal/services"
)

type PortfolioHandler struct {
	service services.PortfolioService
}

func NewPortfolioHandler(service services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// HandleSummary handles GET /api/portfolio/summary
// @Summary Per-coin summary
// @Description Holdings per coin, largest investment first. averagePrice is 0 when totalQuantity is 0.
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.CoinSummary
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Summary())
}

// HandleOverview handles GET /api/portfolio/overview
// @Summary Dashboard totals
// @Tags portfolio
// @Produce json
// @Success 200 {object} models.PortfolioOverview
// @Router /portfolio/overview [get]
func (h *PortfolioHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Overview())
}

// HandleCoins handles GET /api/coins
// @Summary Coin lookup
// @Description Popular coins filtered by a case-insensitive name or symbol fragment
// @Tags coins
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.CoinOption
// @Router /coins [get]
func (h *PortfolioHandler) HandleCoins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SearchCoins(r.URL.Query().Get("q")))
}
