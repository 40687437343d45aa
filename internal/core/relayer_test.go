package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/Christiandike/celo-mondo/internal/celo"
	"github.com/Christiandike/celo-mondo/internal/core"
	"github.com/Christiandike/celo-mondo/internal/core/fake"
	"github.com/Christiandike/celo-mondo/internal/metrics"
	"github.com/Christiandike/celo-mondo/internal/repository"
	tokenIssuer "github.com/Christiandike/celo-mondo/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Relayer", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeChain   *fake.ChainService
		fakeTracker *fake.ConfirmationTracker
		fakeGuard   *fake.RelayGuard
		fakeAudit   *fake.AuditPublisher
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		relayer *core.Relayer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeChain = new(fake.ChainService)
		fakeTracker = new(fake.ConfirmationTracker)
		fakeGuard = new(fake.RelayGuard)
		fakeAudit = new(fake.AuditPublisher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		relayer = core.NewRelayer(fakeLogger, fakeRepo, fakeJWT, fakeChain, fakeTracker, fakeGuard, fakeAudit, metrics.NewRelayerMetrics())

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "grace",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				Username: authMsg.Username,
				Subject:  userId,
				TTL:      24 * time.Hour,
			}
		})

		JustBeforeEach(func() {
			token, err = relayer.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserFromDBCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserFromDBArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("the database errors", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ActivateStake", func() {
		var (
			msg                 core.ActivationMessage
			record              core.ActivationRecord
			err                 error
			staker              string
			group               string
			voteTxHash          string
			activationTxHash    common.Hash
			voteTx              *celo.VoteTransaction
			savedBeforeTracking bool
		)

		BeforeEach(func() {
			staker = common.HexToAddress("0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62").Hex()
			group = common.HexToAddress("0x81cef0668e15639d0b101bdc3067699309d73bed").Hex()
			voteTxHash = common.HexToHash("0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36").Hex()
			activationTxHash = common.HexToHash("0x9a74c9c1f69a1ee37fed58af8a8a77bcf9a635fd19dbe52a2b0db58e644c25a1")

			msg = core.ActivationMessage{
				Address:         staker,
				TransactionHash: voteTxHash,
			}

			voteTx = &celo.VoteTransaction{
				Hash:        voteTxHash,
				From:        staker,
				Succeeded:   true,
				BlockNumber: 27_552_010,
				BlockTime:   time.Now().Add(-2 * time.Hour),
				Vote: &celo.VoteCast{
					Account: staker,
					Group:   group,
					Value:   "25000000000000000000",
				},
			}

			fakeRepo.GetActivationByVoteTxReturns(repository.Activation{}, repository.ErrActivationNotFound)
			fakeGuard.AcquireReturns(true, nil)
			fakeChain.FetchVoteTransactionReturns(voteTx, nil)
			fakeChain.HasActivatablePendingVotesReturns(true, nil)
			fakeChain.ActivateForAccountReturns(activationTxHash.Hex(), nil)

			savedBeforeTracking = false
			fakeTracker.TrackStub = func(context.Context, common.Hash, string) {
				savedBeforeTracking = fakeRepo.SaveActivationCallCount() > 0
			}
		})

		JustBeforeEach(func() {
			record, err = relayer.ActivateStake(ctx, msg)
		})

		When("the vote checks out", func() {
			It("should relay exactly one activation and return its hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Staker).To(Equal(staker))
				Expect(record.Group).To(Equal(group))
				Expect(record.VoteTxHash).To(Equal(voteTxHash))
				Expect(record.ActivationTxHash).To(Equal(activationTxHash.Hex()))
				Expect(record.Value).To(Equal("25000000000000000000"))
				Expect(record.Status).To(Equal(repository.StatusRelayed))

				Expect(fakeGuard.AcquireCallCount()).To(Equal(1))
				_, acquired := fakeGuard.AcquireArgsForCall(0)
				Expect(acquired).To(Equal(voteTxHash))
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(0))

				Expect(fakeChain.HasActivatablePendingVotesCallCount()).To(Equal(1))
				_, account := fakeChain.HasActivatablePendingVotesArgsForCall(0)
				Expect(account).To(Equal(staker))

				Expect(fakeTracker.TrackCallCount()).To(Equal(1))
				_, trackedHash, description := fakeTracker.TrackArgsForCall(0)
				Expect(trackedHash).To(Equal(activationTxHash))
				Expect(description).To(Equal("stake activation"))

				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(1))
				_, argGroup, argAccount := fakeChain.ActivateForAccountArgsForCall(0)
				Expect(argGroup).To(Equal(group))
				Expect(argAccount).To(Equal(staker))
			})

			It("should persist the activation and publish an audit event", func() {
				Expect(fakeRepo.SaveActivationCallCount()).To(Equal(1))
				_, activation := fakeRepo.SaveActivationArgsForCall(0)
				Expect(activation).To(Equal(repository.Activation{
					Staker:           staker,
					Group:            group,
					VoteTxHash:       voteTxHash,
					ActivationTxHash: activationTxHash.Hex(),
					Value:            "25000000000000000000",
					Status:           repository.StatusRelayed,
				}))

				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
				_, event := fakeAudit.PublishArgsForCall(0)
				Expect(event.Action).To(Equal(core.AuditActivationRelayed))
				Expect(event.Staker).To(Equal(staker))
				Expect(event.Group).To(Equal(group))
				Expect(event.VoteTxHash).To(Equal(voteTxHash))
				Expect(event.ActivationTxHash).To(Equal(activationTxHash.Hex()))
				Expect(event.Timestamp).NotTo(BeZero())
			})

			It("should persist the record before tracking starts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeTracker.TrackCallCount()).To(Equal(1))
				Expect(savedBeforeTracking).To(BeTrue())
			})
		})

		When("the vote transaction was already relayed", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByVoteTxReturns(repository.Activation{
					VoteTxHash: voteTxHash,
					Status:     repository.StatusConfirmed,
				}, nil)
			})

			It("should reject without touching the chain", func() {
				Expect(err).To(MatchError(core.ErrAlreadyActivated))
				Expect(fakeGuard.AcquireCallCount()).To(Equal(0))
				Expect(fakeChain.FetchVoteTransactionCallCount()).To(Equal(0))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("a previous activation for the vote failed", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByVoteTxReturns(repository.Activation{
					VoteTxHash:       voteTxHash,
					ActivationTxHash: "0x41d2be53c4a09e4c8b7ef5a0b37da2b966ee2d4d4e45c918aef4a2c1e9b6de5d",
					Status:           repository.StatusFailed,
				}, nil)
			})

			It("should verify the vote again and relay a fresh activation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ActivationTxHash).To(Equal(activationTxHash.Hex()))
				Expect(record.Status).To(Equal(repository.StatusRelayed))

				Expect(fakeChain.FetchVoteTransactionCallCount()).To(Equal(1))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(1))
				Expect(fakeRepo.SaveActivationCallCount()).To(Equal(1))
			})
		})

		When("the duplicate lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByVoteTxReturns(repository.Activation{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("another relay for the hash is in flight", func() {
			BeforeEach(func() {
				fakeGuard.AcquireReturns(false, nil)
			})

			It("should reject without fetching the transaction", func() {
				Expect(err).To(MatchError(core.ErrRelayInProgress))
				Expect(fakeChain.FetchVoteTransactionCallCount()).To(Equal(0))
			})
		})

		When("the guard errors", func() {
			BeforeEach(func() {
				fakeGuard.AcquireReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeChain.FetchVoteTransactionCallCount()).To(Equal(0))
			})
		})

		When("fetching the vote transaction fails", func() {
			BeforeEach(func() {
				fakeChain.FetchVoteTransactionReturns(nil, fakeErr)
			})

			It("should release the relay slot and return the error", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
				_, released := fakeGuard.ReleaseArgsForCall(0)
				Expect(released).To(Equal(voteTxHash))

				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the vote transaction reverted", func() {
			BeforeEach(func() {
				voteTx.Succeeded = false
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrVoteTxFailed))
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the vote was sent by someone else", func() {
			BeforeEach(func() {
				voteTx.From = common.HexToAddress("0x6cc083aed9e3ebe302a6336dbc7c921c9f03349e").Hex()
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrSenderMismatch))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the vote is older than three days", func() {
			BeforeEach(func() {
				voteTx.BlockTime = time.Now().Add(-73 * time.Hour)
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrVoteTooOld))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the transaction emitted no vote event", func() {
			BeforeEach(func() {
				voteTx.Vote = nil
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrVoteNotCast))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the vote event belongs to another account", func() {
			BeforeEach(func() {
				voteTx.Vote.Account = common.HexToAddress("0x6cc083aed9e3ebe302a6336dbc7c921c9f03349e").Hex()
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrVoterMismatch))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the staker has nothing to activate", func() {
			BeforeEach(func() {
				fakeChain.HasActivatablePendingVotesReturns(false, nil)
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrNothingToActivate))
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
				Expect(fakeChain.ActivateForAccountCallCount()).To(Equal(0))
			})
		})

		When("the eligibility check fails", func() {
			BeforeEach(func() {
				fakeChain.HasActivatablePendingVotesReturns(false, fakeErr)
			})

			It("should release the relay slot and return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
			})
		})

		When("broadcasting the activation fails", func() {
			BeforeEach(func() {
				fakeChain.ActivateForAccountReturns("", fakeErr)
			})

			It("should release the relay slot and return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("relay activation"))

				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
				Expect(fakeRepo.SaveActivationCallCount()).To(Equal(0))
				Expect(fakeAudit.PublishCallCount()).To(Equal(0))
				Expect(fakeTracker.TrackCallCount()).To(Equal(0))
			})
		})

		When("the client disconnects while the transaction is sent", func() {
			var cancel context.CancelFunc

			BeforeEach(func() {
				ctx, cancel = context.WithCancel(context.Background())
				fakeChain.ActivateForAccountStub = func(context.Context, string, string) (string, error) {
					cancel()
					return activationTxHash.Hex(), nil
				}
			})

			It("should persist and audit the relay on a live context", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveActivationCallCount()).To(Equal(1))
				saveCtx, _ := fakeRepo.SaveActivationArgsForCall(0)
				Expect(saveCtx.Err()).To(BeNil())

				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
				publishCtx, _ := fakeAudit.PublishArgsForCall(0)
				Expect(publishCtx.Err()).To(BeNil())

				Expect(fakeTracker.TrackCallCount()).To(Equal(1))
				_, trackedHash, _ := fakeTracker.TrackArgsForCall(0)
				Expect(trackedHash).To(Equal(activationTxHash))
			})
		})

		When("saving the activation record fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveActivationReturns(fakeErr)
			})

			It("should still report the relayed activation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ActivationTxHash).To(Equal(activationTxHash.Hex()))
				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
			})
		})

		When("publishing the audit event fails", func() {
			BeforeEach(func() {
				fakeAudit.PublishReturns(fakeErr)
			})

			It("should still report the relayed activation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ActivationTxHash).To(Equal(activationTxHash.Hex()))
			})
		})
	})

	Describe("MarkActivationConfirmed", func() {
		var activationTxHash string

		BeforeEach(func() {
			activationTxHash = common.HexToHash("0x9a74c9c1f69a1ee37fed58af8a8a77bcf9a635fd19dbe52a2b0db58e644c25a1").Hex()
		})

		JustBeforeEach(func() {
			relayer.MarkActivationConfirmed(ctx, activationTxHash)
		})

		When("the record exists", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByActivationTxReturns(repository.Activation{
					Staker:           "0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62",
					Group:            "0x81CeF0668E15639D0b101bdC3067699309D73BED",
					VoteTxHash:       "0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36",
					ActivationTxHash: activationTxHash,
					Status:           repository.StatusRelayed,
				}, nil)
			})

			It("should mark the row confirmed and publish an audit event", func() {
				Expect(fakeRepo.SetActivationStatusCallCount()).To(Equal(1))
				_, hash, status := fakeRepo.SetActivationStatusArgsForCall(0)
				Expect(hash).To(Equal(activationTxHash))
				Expect(status).To(Equal(repository.StatusConfirmed))

				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
				_, event := fakeAudit.PublishArgsForCall(0)
				Expect(event.Action).To(Equal(core.AuditActivationConfirmed))
				Expect(event.Staker).To(Equal("0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62"))
				Expect(event.ActivationTxHash).To(Equal(activationTxHash))
			})
		})

		When("the status update fails", func() {
			BeforeEach(func() {
				fakeRepo.SetActivationStatusReturns(fakeErr)
			})

			It("should not publish an audit event", func() {
				Expect(fakeAudit.PublishCallCount()).To(Equal(0))
			})
		})

		When("the record cannot be loaded", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByActivationTxReturns(repository.Activation{}, repository.ErrActivationNotFound)
			})

			It("should publish the audit event without staker details", func() {
				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
				_, event := fakeAudit.PublishArgsForCall(0)
				Expect(event.Action).To(Equal(core.AuditActivationConfirmed))
				Expect(event.Staker).To(BeEmpty())
			})
		})
	})

	Describe("MarkActivationFailed", func() {
		var (
			activationTxHash string
			failure          error
		)

		BeforeEach(func() {
			activationTxHash = common.HexToHash("0x9a74c9c1f69a1ee37fed58af8a8a77bcf9a635fd19dbe52a2b0db58e644c25a1").Hex()
			failure = errors.New("transaction reverted")
		})

		JustBeforeEach(func() {
			relayer.MarkActivationFailed(ctx, activationTxHash, failure)
		})

		When("the record exists", func() {
			BeforeEach(func() {
				fakeRepo.GetActivationByActivationTxReturns(repository.Activation{
					Staker:           "0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62",
					VoteTxHash:       "0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36",
					ActivationTxHash: activationTxHash,
					Status:           repository.StatusRelayed,
				}, nil)
			})

			It("should mark the row failed and publish the failure reason", func() {
				Expect(fakeRepo.SetActivationStatusCallCount()).To(Equal(1))
				_, hash, status := fakeRepo.SetActivationStatusArgsForCall(0)
				Expect(hash).To(Equal(activationTxHash))
				Expect(status).To(Equal(repository.StatusFailed))

				Expect(fakeAudit.PublishCallCount()).To(Equal(1))
				_, event := fakeAudit.PublishArgsForCall(0)
				Expect(event.Action).To(Equal(core.AuditActivationFailed))
				Expect(event.Reason).To(Equal("transaction reverted"))
			})

			It("should free the relay slot so the vote can be retried", func() {
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(1))
				_, released := fakeGuard.ReleaseArgsForCall(0)
				Expect(released).To(Equal("0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36"))
			})
		})

		When("the status update fails", func() {
			BeforeEach(func() {
				fakeRepo.SetActivationStatusReturns(fakeErr)
			})

			It("should not publish an audit event", func() {
				Expect(fakeAudit.PublishCallCount()).To(Equal(0))
				Expect(fakeGuard.ReleaseCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetActivations", func() {
		var (
			token   string
			staker  string
			records []core.ActivationRecord
			err     error
		)

		BeforeEach(func() {
			token = "signed.token"
			staker = ""

			fakeJWT.ValidateReturns(jwt.MapClaims{
				"username": "grace",
				"sub":      uuid.New().String(),
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = relayer.GetActivations(ctx, token, staker)
		})

		When("no staker filter is given", func() {
			BeforeEach(func() {
				fakeRepo.GetAllActivationsReturns([]repository.Activation{
					{
						Staker:     "0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62",
						VoteTxHash: "0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36",
						Status:     repository.StatusConfirmed,
					},
					{
						Staker:     "0x6Cc083Aed9e3ebe302A6336dBC7c921C9f03349E",
						VoteTxHash: "0x9a74c9c1f69a1ee37fed58af8a8a77bcf9a635fd19dbe52a2b0db58e644c25a1",
						Status:     repository.StatusRelayed,
					},
				}, nil)
			})

			It("should return all stored activations", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Staker).To(Equal("0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62"))
				Expect(records[1].Status).To(Equal(repository.StatusRelayed))

				Expect(fakeRepo.GetAllActivationsCallCount()).To(Equal(1))
				Expect(fakeRepo.GetActivationsByStakerCallCount()).To(Equal(0))
			})
		})

		When("a staker filter is given", func() {
			BeforeEach(func() {
				staker = "0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62"

				fakeRepo.GetActivationsByStakerReturns([]repository.Activation{
					{
						Staker: "0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62",
						Status: repository.StatusConfirmed,
					},
				}, nil)
			})

			It("should query only that staker", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))

				Expect(fakeRepo.GetActivationsByStakerCallCount()).To(Equal(1))
				_, stakers := fakeRepo.GetActivationsByStakerArgsForCall(0)
				Expect(stakers).To(Equal([]string{common.HexToAddress(staker).Hex()}))

				Expect(fakeRepo.GetAllActivationsCallCount()).To(Equal(0))
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return the validation error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(fakeRepo.GetAllActivationsCallCount()).To(Equal(0))
			})
		})

		When("the repository errors", func() {
			BeforeEach(func() {
				fakeRepo.GetAllActivationsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
