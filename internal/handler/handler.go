package handler

import (
	"github.com/bassel-dev/crypto-dashboard/internal/service"
)

type Handler struct {
	MarketHandler *MarketHandler
}

func NewHandler(pipeline *service.Pipeline) *Handler {
	return &Handler{
		MarketHandler: NewMarketHandler(pipeline),
	}
}
