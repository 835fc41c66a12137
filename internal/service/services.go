package service

import (
	"github.com/mvelasco/cryptofolio/internal/adapter"
	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/store"
)

type Services struct {
	SessionService   SessionService
	MarketService    MarketService
	PortfolioService PortfolioService
	SettingsService  SettingsService
}

func NewServices(storages *store.Storages, keychain crypto.KeyChainService, marketAdapter adapter.MarketAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService:   NewSessionService(storages, keychain, cfg.App, logger),
		MarketService:    NewMarketService(marketAdapter, cfg.App, logger),
		PortfolioService: NewPortfolioService(storages.Portfolio, logger),
		SettingsService:  NewSettingsService(storages.Settings, logger),
	}
}
