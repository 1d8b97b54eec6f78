package vocab

import "errors"

// ErrInvalidCardData indicates a card or payload is missing fields that
// downstream consumers (quiz generation, display) require.
var ErrInvalidCardData = errors.New("invalid card data")
