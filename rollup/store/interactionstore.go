// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

type InteractionStatus string

var (
	KEY                                   = "bridge:%d:nonce:%d"
	MissingInteraction  InteractionStatus = "missing"
	PendingInteraction  InteractionStatus = "pending"
	FailedInteraction   InteractionStatus = "failed"
	ExecutedInteraction InteractionStatus = "executed"
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

type InteractionStore struct {
	db KeyValueReaderWriter
}

func NewInteractionStore(db KeyValueReaderWriter) *InteractionStore {
	return &InteractionStore{
		db: db,
	}
}

// StoreInteractionStatus stores settlement status per interaction nonce
func (is *InteractionStore) StoreInteractionStatus(bridgeID, nonce uint64, status InteractionStatus) error {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, bridgeID, nonce)
	key.WriteString(keyS)

	err := is.db.SetByKey(key.Bytes(), []byte(status))
	if err != nil {
		return err
	}

	return nil
}

func (is *InteractionStore) InteractionStatus(bridgeID, nonce uint64) (InteractionStatus, error) {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, bridgeID, nonce)
	key.WriteString(keyS)

	v, err := is.db.GetByKey(key.Bytes())
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingInteraction, nil
		}
		return MissingInteraction, err
	}

	return InteractionStatus(v), nil
}
