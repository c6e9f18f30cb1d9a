package storage

import "time"

type StateBlob struct {
	Key       string
	Value     []byte
	Revision  string
	UpdatedAt time.Time
}
