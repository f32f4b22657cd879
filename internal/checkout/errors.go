package checkout

import "errors"

var ErrPlacementInProgress = errors.New("an order placement is already in progress")
