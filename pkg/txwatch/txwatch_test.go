package txwatch_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/Christiandike/celo-mondo/pkg/txwatch"
	"github.com/Christiandike/celo-mondo/pkg/txwatch/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Watcher", func() {
	var (
		watcher     *txwatch.Watcher
		fakeBackend *fake.ReceiptBackend
		ctx         context.Context

		confirmed chan txwatch.Confirmation
		failed    chan error

		txHash  common.Hash
		receipt *types.Receipt
		testErr error
	)

	BeforeEach(func() {
		fakeBackend = new(fake.ReceiptBackend)
		ctx = context.Background()
		testErr = errors.New("test error")

		txHash = common.HexToHash("0x5a0b54d5dc17e0aadc383d2db43b0a0d3e029c4c5ef9c07fbd3f2a6b3a1f6f2d")
		receipt = &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(27_552_010),
		}

		confirmed = make(chan txwatch.Confirmation, 8)
		failed = make(chan error, 8)

		watcher = txwatch.NewWatcher(
			fakeBackend,
			txwatch.WithPollInterval(time.Millisecond),
			txwatch.WithMaxAttempts(5),
			txwatch.WithOnConfirmed(func(c txwatch.Confirmation) {
				confirmed <- c
			}),
			txwatch.WithOnFailed(func(c txwatch.Confirmation, err error) {
				failed <- err
			}),
		)
	})

	Describe("Submit", func() {
		var (
			submitted common.Hash
			err       error
			submitFn  func(context.Context) (common.Hash, error)
		)

		JustBeforeEach(func() {
			submitted, err = watcher.Submit(ctx, "activate votes", submitFn)
			watcher.Wait()
		})

		When("the submit function succeeds", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturns(receipt, nil)
				submitFn = func(context.Context) (common.Hash, error) {
					return txHash, nil
				}
			})

			It("should return the hash and track it to confirmation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(submitted).To(Equal(txHash))

				status := watcher.Status(txHash)
				Expect(status.Confirmed).To(BeTrue())
				Expect(status.Loading).To(BeFalse())

				Expect(confirmed).To(HaveLen(1))
				conf := <-confirmed
				Expect(conf.Hash).To(Equal(txHash))
				Expect(conf.Description).To(Equal("activate votes"))
				Expect(conf.Receipt).To(Equal(receipt))
			})
		})

		When("the submit function fails", func() {
			BeforeEach(func() {
				submitFn = func(context.Context) (common.Hash, error) {
					return common.Hash{}, testErr
				}
			})

			It("should return a wrapped error and not poll", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring("submit transaction"))
				Expect(fakeBackend.TransactionReceiptCallCount()).To(Equal(0))
				Expect(watcher.Status(txHash)).To(Equal(txwatch.Status{}))
			})
		})
	})

	Describe("Track", func() {
		When("the receipt is not found at first", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturnsOnCall(0, nil, ethereum.NotFound)
				fakeBackend.TransactionReceiptReturnsOnCall(1, nil, ethereum.NotFound)
				fakeBackend.TransactionReceiptReturns(receipt, nil)
			})

			It("should keep polling until the receipt lands", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				Expect(fakeBackend.TransactionReceiptCallCount()).To(Equal(3))
				_, argHash := fakeBackend.TransactionReceiptArgsForCall(0)
				Expect(argHash).To(Equal(txHash))

				Expect(watcher.Status(txHash).Confirmed).To(BeTrue())
				Expect(confirmed).To(HaveLen(1))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(27_552_010),
				}, nil)
			})

			It("should report the failure once", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				status := watcher.Status(txHash)
				Expect(status.Failed).To(BeTrue())
				Expect(status.Err).To(MatchError(txwatch.ErrTxReverted))

				Expect(confirmed).To(BeEmpty())
				Expect(failed).To(HaveLen(1))
				Expect(<-failed).To(MatchError(txwatch.ErrTxReverted))
			})
		})

		When("the receipt never shows up", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturns(nil, ethereum.NotFound)
			})

			It("should give up after the attempt limit", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				Expect(fakeBackend.TransactionReceiptCallCount()).To(Equal(5))

				status := watcher.Status(txHash)
				Expect(status.Failed).To(BeTrue())
				Expect(status.Err.Error()).To(ContainSubstring("waiting for receipt"))
				Expect(failed).To(HaveLen(1))
			})
		})

		When("the node errors on the receipt lookup", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturns(nil, testErr)
			})

			It("should fail without another poll", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				Expect(fakeBackend.TransactionReceiptCallCount()).To(Equal(1))

				status := watcher.Status(txHash)
				Expect(status.Failed).To(BeTrue())
				Expect(status.Err).To(MatchError(testErr))
				Expect(failed).To(HaveLen(1))
			})
		})

		When("the same hash is tracked repeatedly", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturnsOnCall(0, nil, ethereum.NotFound)
				fakeBackend.TransactionReceiptReturns(receipt, nil)
			})

			It("should fire the confirmation callback exactly once", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()

				Expect(fakeBackend.TransactionReceiptCallCount()).To(Equal(2))
				Expect(confirmed).To(HaveLen(1))
			})
		})

		When("a confirmed hash is forgotten", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturns(receipt, nil)
			})

			It("should allow a fresh confirmation to fire again", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()
				Expect(confirmed).To(HaveLen(1))

				watcher.Forget(txHash)
				Expect(watcher.Status(txHash)).To(Equal(txwatch.Status{}))

				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()
				Expect(confirmed).To(HaveLen(2))
			})
		})

		When("a failed hash is tracked again", func() {
			BeforeEach(func() {
				fakeBackend.TransactionReceiptReturnsOnCall(0, &types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(27_552_010),
				}, nil)
				fakeBackend.TransactionReceiptReturns(receipt, nil)
			})

			It("should start a new lifecycle for the hash", func() {
				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()
				Expect(failed).To(HaveLen(1))
				Expect(watcher.Status(txHash).Failed).To(BeTrue())

				watcher.Track(ctx, txHash, "activate votes")
				watcher.Wait()
				Expect(confirmed).To(HaveLen(1))
				Expect(watcher.Status(txHash).Confirmed).To(BeTrue())
			})
		})
	})

	Describe("Status", func() {
		It("should return an empty status for unknown hashes", func() {
			Expect(watcher.Status(common.HexToHash("0xdead"))).To(Equal(txwatch.Status{}))
		})
	})
})
