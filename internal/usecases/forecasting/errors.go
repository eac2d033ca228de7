package forecasting

import "errors"

var ErrNoHistory = errors.New("no sales history to forecast from")
