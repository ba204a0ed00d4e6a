package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

// SymbolService lists the symbols currently tradable on an exchange.
type SymbolService interface {
	// TradingSymbols returns every symbol that is currently open for trading.
	TradingSymbols(ctx context.Context) ([]string, error)
	LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}
