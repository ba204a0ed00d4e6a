package binance

import (
	"context"
	"fmt"
	"strings"

	"github.com/KNICEX/pair-watcher/internal/service/exchange"
	"github.com/adshao/go-binance/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const statusTrading = "TRADING"

type SymbolService struct {
	cli *binance.Client
}

func NewSymbolService(cli *binance.Client) exchange.SymbolService {
	return &SymbolService{
		cli: cli,
	}
}

func (svc *SymbolService) TradingSymbols(ctx context.Context) ([]string, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(info.Symbols, func(item binance.Symbol, index int) (string, bool) {
		return item.Symbol, strings.EqualFold(item.Status, statusTrading)
	}), nil
}

func (svc *SymbolService) LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := svc.cli.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, fmt.Errorf("symbol %s not found", symbol)
	}
	return decimal.NewFromString(prices[0].Price)
}
