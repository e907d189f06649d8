// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package rollup

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/YtzBeno/aztec-connect-bridges/rollup/store"
)

// Listener polls the chain for settlement events and records interaction
// outcomes in the store.
type Listener struct {
	processor *Processor
	store     *store.InteractionStore
	interval  time.Duration
}

func NewListener(processor *Processor, interactionStore *store.InteractionStore, interval time.Duration) *Listener {
	return &Listener{
		processor: processor,
		store:     interactionStore,
		interval:  interval,
	}
}

// Listen blocks until the context is cancelled.
func (l *Listener) Listen(ctx context.Context, startBlock uint64) {
	lastBlock := startBlock
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			latest, err := l.processor.client.BlockNumber(ctx)
			if err != nil {
				log.Error().Err(err).Msg("unable to fetch latest block")
				continue
			}
			if latest <= lastBlock {
				continue
			}

			events, err := l.processor.FetchDefiBridgeProcessed(
				ctx,
				new(big.Int).SetUint64(lastBlock+1),
				new(big.Int).SetUint64(latest),
			)
			if err != nil {
				log.Error().Err(err).Msg("unable to fetch settlement events")
				continue
			}

			for _, ev := range events {
				status := store.ExecutedInteraction
				if !ev.Result {
					status = store.FailedInteraction
				}
				err = l.store.StoreInteractionStatus(ev.BridgeID(), ev.Nonce.Uint64(), status)
				if err != nil {
					log.Error().Err(err).Msgf("unable to store status for interaction %s", ev.Nonce)
				}
			}
			lastBlock = latest
		}
	}
}
