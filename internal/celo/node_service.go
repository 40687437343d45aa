package celo

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrTxNotFound             error = errors.New("transaction not found")
	ErrTxPending              error = errors.New("transaction not yet mined")
	ErrNotElectionTransaction error = errors.New("transaction was not sent to the election contract")
)

// NodeService talks to a Celo node about the Election contract: it
// fetches vote transactions, reads activation eligibility and sends
// activation transactions signed with the relayer key.
type NodeService struct {
	client   EthClient
	election common.Address
	key      *ecdsa.PrivateKey
	relayer  common.Address
	abi      abi.ABI

	// serializes nonce lookup and send for the single relayer account
	sendMu sync.Mutex
}

func NewNodeService(ethClient EthClient, electionAddr string, relayerKeyHex string) (*NodeService, error) {
	parsed, err := abi.JSON(strings.NewReader(electionABI))
	if err != nil {
		return nil, fmt.Errorf("parsing election abi: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(relayerKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing relayer key: %w", err)
	}

	return &NodeService{
		client:   ethClient,
		election: common.HexToAddress(electionAddr),
		key:      key,
		relayer:  crypto.PubkeyToAddress(key.PublicKey),
		abi:      parsed,
	}, nil
}

func (s *NodeService) RelayerAddress() string {
	return s.relayer.Hex()
}

func (s *NodeService) ElectionAddress() string {
	return s.election.Hex()
}

func (s *NodeService) FetchVoteTransaction(ctx context.Context, hash string) (*VoteTransaction, error) {
	txHash := common.HexToHash(hash)

	tx, pending, err := s.client.TransactionByHash(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTxNotFound, hash)
		}
		return nil, fmt.Errorf("fetching transaction %q: %w", hash, err)
	}
	if pending {
		return nil, fmt.Errorf("%w: %s", ErrTxPending, hash)
	}

	if tx.To() == nil || *tx.To() != s.election {
		return nil, ErrNotElectionTransaction
	}

	receipt, err := s.client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("fetching receipt %q: %w", hash, err)
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching network id: %w", err)
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, fmt.Errorf("recovering sender: %w", err)
	}

	header, err := s.client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("fetching block header %s: %w", receipt.BlockNumber, err)
	}

	vote, err := s.decodeVoteCast(receipt)
	if err != nil {
		return nil, err
	}

	return &VoteTransaction{
		Hash:        tx.Hash().Hex(),
		From:        from.Hex(),
		To:          tx.To().Hex(),
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: receipt.BlockNumber.Uint64(),
		BlockTime:   time.Unix(int64(header.Time), 0),
		Vote:        vote,
	}, nil
}

func (s *NodeService) decodeVoteCast(receipt *types.Receipt) (*VoteCast, error) {
	event := s.abi.Events[voteCastEventName]

	for _, lg := range receipt.Logs {
		if lg.Address != s.election {
			continue
		}
		if len(lg.Topics) < 3 || lg.Topics[0] != event.ID {
			continue
		}

		unpacked, err := s.abi.Unpack(voteCastEventName, lg.Data)
		if err != nil {
			return nil, fmt.Errorf("unpacking vote cast event: %w", err)
		}
		value, ok := unpacked[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected vote value type %T", unpacked[0])
		}

		return &VoteCast{
			Account: common.BytesToAddress(lg.Topics[1].Bytes()).Hex(),
			Group:   common.BytesToAddress(lg.Topics[2].Bytes()).Hex(),
			Value:   value.String(),
		}, nil
	}

	return nil, nil
}

func (s *NodeService) HasActivatablePendingVotes(ctx context.Context, account string) (bool, error) {
	input, err := s.abi.Pack("hasActivatablePendingVotes", common.HexToAddress(account))
	if err != nil {
		return false, fmt.Errorf("packing eligibility call: %w", err)
	}

	output, err := s.client.CallContract(ctx, ethereum.CallMsg{
		To:   &s.election,
		Data: input,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("calling hasActivatablePendingVotes: %w", err)
	}

	unpacked, err := s.abi.Unpack("hasActivatablePendingVotes", output)
	if err != nil {
		return false, fmt.Errorf("unpacking eligibility result: %w", err)
	}
	activatable, ok := unpacked[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected eligibility result type %T", unpacked[0])
	}

	return activatable, nil
}

func (s *NodeService) ActivateForAccount(ctx context.Context, group string, account string) (string, error) {
	input, err := s.abi.Pack("activateForAccount", common.HexToAddress(group), common.HexToAddress(account))
	if err != nil {
		return "", fmt.Errorf("packing activation call: %w", err)
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching network id: %w", err)
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.relayer)
	if err != nil {
		return "", fmt.Errorf("fetching relayer nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching gas price: %w", err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From: s.relayer,
		To:   &s.election,
		Data: input,
	})
	if err != nil {
		return "", fmt.Errorf("estimating activation gas: %w", err)
	}
	gasLimit += gasLimit / 5

	tx := types.NewTransaction(nonce, s.election, big.NewInt(0), gasLimit, gasPrice, input)

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return "", fmt.Errorf("signing activation transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("sending activation transaction: %w", err)
	}

	return signedTx.Hash().Hex(), nil
}
