// Package txwatch tracks the lifecycle of submitted transactions: it runs a
// submission, polls the node for the receipt and reports a combined
// loading/confirmed/failed state per transaction hash. Terminal callbacks
// fire at most once per tracked hash until the hash is forgotten.
package txwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultMaxAttempts  = 40
)

var ErrTxReverted error = errors.New("transaction reverted")

// Confirmation is handed to the watcher callbacks once a tracked transaction
// reaches a terminal state.
type Confirmation struct {
	Hash        common.Hash
	Description string
	Receipt     *types.Receipt
}

// Status is a snapshot of a tracked transaction's lifecycle. Loading is set
// while the receipt is still being polled, Confirmed once a success receipt
// arrived, Failed when the transaction reverted or polling gave up.
type Status struct {
	Hash      common.Hash
	Loading   bool
	Confirmed bool
	Failed    bool
	Err       error
}

type entry struct {
	description string
	status      Status
	fired       bool
}

type Watcher struct {
	backend  ReceiptBackend
	logs     *zap.SugaredLogger
	interval time.Duration
	attempts uint

	onConfirmed func(Confirmation)
	onFailed    func(Confirmation, error)

	mu      sync.Mutex
	entries map[common.Hash]*entry
	wg      sync.WaitGroup
}

type Option func(*Watcher)

func WithPollInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		w.interval = interval
	}
}

func WithMaxAttempts(attempts uint) Option {
	return func(w *Watcher) {
		w.attempts = attempts
	}
}

func WithLogger(logs *zap.SugaredLogger) Option {
	return func(w *Watcher) {
		w.logs = logs
	}
}

// WithOnConfirmed registers the success callback. It runs at most once per
// distinct confirmed hash, no matter how often the status is re-read or the
// hash re-tracked.
func WithOnConfirmed(fn func(Confirmation)) Option {
	return func(w *Watcher) {
		w.onConfirmed = fn
	}
}

// WithOnFailed registers the failure callback, invoked when the transaction
// reverted or the receipt never showed up.
func WithOnFailed(fn func(Confirmation, error)) Option {
	return func(w *Watcher) {
		w.onFailed = fn
	}
}

func NewWatcher(backend ReceiptBackend, opts ...Option) *Watcher {
	w := &Watcher{
		backend:  backend,
		logs:     zap.NewNop().Sugar(),
		interval: defaultPollInterval,
		attempts: defaultMaxAttempts,
		entries:  make(map[common.Hash]*entry),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit runs the submission function and, on success, starts confirmation
// tracking for the returned hash. A submission failure is returned to the
// caller and nothing is tracked.
func (w *Watcher) Submit(ctx context.Context, description string, submit func(context.Context) (common.Hash, error)) (common.Hash, error) {
	hash, err := submit(ctx)
	if err != nil {
		w.logs.Errorw("transaction submission failed", "description", description, "error", err)
		return common.Hash{}, fmt.Errorf("submit transaction: %w", err)
	}

	w.logs.Infow("transaction submitted", "description", description, "tx_hash", hash.Hex())
	w.Track(ctx, hash, description)
	return hash, nil
}

// Track begins polling for the receipt of hash. Tracking a hash that is
// already loading or confirmed is a no-op; a failed hash is re-armed and
// polled again.
func (w *Watcher) Track(ctx context.Context, hash common.Hash, description string) {
	w.mu.Lock()
	if e, ok := w.entries[hash]; ok && (e.status.Loading || e.status.Confirmed) {
		w.mu.Unlock()
		return
	}
	w.entries[hash] = &entry{
		description: description,
		status:      Status{Hash: hash, Loading: true},
	}
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.wait(ctx, hash, description)
	}()
}

// Status returns the lifecycle snapshot for hash, or a zero Status when the
// hash is not tracked.
func (w *Watcher) Status(hash common.Hash) Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	if e, ok := w.entries[hash]; ok {
		return e.status
	}
	return Status{}
}

// Forget drops the entry for hash. A later Track of the same hash starts a
// fresh lifecycle, so the terminal callbacks can fire again.
func (w *Watcher) Forget(hash common.Hash) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entries, hash)
}

// Wait blocks until all in-flight receipt polls have finished.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) wait(ctx context.Context, hash common.Hash, description string) {
	var receipt *types.Receipt
	err := retry.Do(
		func() error {
			r, err := w.backend.TransactionReceipt(ctx, hash)
			if err != nil {
				return err
			}
			receipt = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(w.attempts),
		retry.Delay(w.interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		// Keep polling only while the node has no receipt yet; any other
		// backend error is terminal.
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ethereum.NotFound)
		}),
	)
	if err != nil {
		w.fail(hash, description, nil, fmt.Errorf("waiting for receipt: %w", err))
		return
	}

	if receipt.Status == types.ReceiptStatusFailed {
		w.fail(hash, description, receipt, ErrTxReverted)
		return
	}

	w.confirm(hash, description, receipt)
}

func (w *Watcher) confirm(hash common.Hash, description string, receipt *types.Receipt) {
	w.mu.Lock()
	e, ok := w.entries[hash]
	if !ok {
		// forgotten mid-flight
		w.mu.Unlock()
		return
	}
	e.status = Status{Hash: hash, Confirmed: true}
	fire := !e.fired
	e.fired = true
	cb := w.onConfirmed
	w.mu.Unlock()

	w.logs.Infow("transaction confirmed",
		"description", description,
		"tx_hash", hash.Hex(),
		"block_number", receipt.BlockNumber)

	if fire && cb != nil {
		cb(Confirmation{Hash: hash, Description: description, Receipt: receipt})
	}
}

func (w *Watcher) fail(hash common.Hash, description string, receipt *types.Receipt, failure error) {
	w.mu.Lock()
	e, ok := w.entries[hash]
	if !ok {
		w.mu.Unlock()
		return
	}
	e.status = Status{Hash: hash, Failed: true, Err: failure}
	fire := !e.fired
	e.fired = true
	cb := w.onFailed
	w.mu.Unlock()

	w.logs.Errorw("transaction failed",
		"description", description,
		"tx_hash", hash.Hex(),
		"error", failure)

	if fire && cb != nil {
		cb(Confirmation{Hash: hash, Description: description, Receipt: receipt}, failure)
	}
}
