package feeder

import (
	"errors"
)

var (
	ErrUnmarshalRecord = errors.New("failed to unmarshal sequence record")
	ErrReadRecord      = errors.New("failed to read sequence record")
)

// Feed carries either a numeric sequence or the error hit while getting it
type Feed struct {
	Values []float64
	Err    error
}

// Feeder delivers sequences on the channel returned by GetFeed, the channel is closed
// when the source is exhausted or the feeder is stopped.
type Feeder interface {
	GetFeed() chan *Feed
	Stop()
}
