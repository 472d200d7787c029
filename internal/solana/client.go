// Package solana wraps the Solana JSON-RPC client with metrics and domain types.
package solana

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/goodnatureofminers/sni-backend/internal/model"
)

// ErrBlockTimeUnavailable is returned when the node has no timestamp for a slot.
var ErrBlockTimeUnavailable = errors.New("block time unavailable")

// JSON-RPC error codes the node uses for slots without a block.
const (
	codeBlockNotAvailable          = -32004
	codeSlotSkipped                = -32007
	codeLongTermStorageSlotSkipped = -32009
)

// Client is an instrumented Solana RPC client bound to one commitment level.
type Client struct {
	client     RPC
	rpcMetrics RPCMetrics
	commitment rpc.CommitmentType
}

// NewClient dials endpoint over HTTP; timeout bounds every request.
func NewClient(endpoint string, commitment string, timeout time.Duration, rpcMetrics RPCMetrics) (*Client, error) {
	c, err := ParseCommitment(commitment)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: timeout}
	rpcClient := rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: httpClient,
	}))

	return newClient(rpcClient, rpcMetrics, c), nil
}

func newClient(client RPC, rpcMetrics RPCMetrics, commitment rpc.CommitmentType) *Client {
	return &Client{client: client, rpcMetrics: rpcMetrics, commitment: commitment}
}

// ParseCommitment maps a config value onto an RPC commitment level.
func ParseCommitment(s string) (rpc.CommitmentType, error) {
	switch c := rpc.CommitmentType(s); c {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return c, nil
	case "":
		return rpc.CommitmentConfirmed, nil
	default:
		return "", fmt.Errorf("unknown commitment %q", s)
	}
}

// Commitment returns the commitment level requests are made with.
func (c *Client) Commitment() rpc.CommitmentType {
	return c.commitment
}

// GetSlot returns the node's current slot.
func (c *Client) GetSlot(ctx context.Context) (slot uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_slot", err, started)
	}()
	return c.client.GetSlot(ctx, c.commitment)
}

// GetEpochInfo returns the current epoch position.
func (c *Client) GetEpochInfo(ctx context.Context) (info EpochInfo, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_epoch_info", err, started)
	}()

	res, err := c.client.GetEpochInfo(ctx, c.commitment)
	if err != nil {
		return EpochInfo{}, err
	}
	return EpochInfo{
		AbsoluteSlot: res.AbsoluteSlot,
		BlockHeight:  res.BlockHeight,
		Epoch:        res.Epoch,
		SlotIndex:    res.SlotIndex,
		SlotsInEpoch: res.SlotsInEpoch,
	}, nil
}

// GetTransactionCount returns the cumulative transaction count.
func (c *Client) GetTransactionCount(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_transaction_count", err, started)
	}()
	return c.client.GetTransactionCount(ctx, c.commitment)
}

// GetVersion returns the solana-core version of the node.
func (c *Client) GetVersion(ctx context.Context) (version string, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_version", err, started)
	}()

	res, err := c.client.GetVersion(ctx)
	if err != nil {
		return "", err
	}
	return res.SolanaCore, nil
}

// GetBlockTime returns the estimated production time of slot in unix seconds.
func (c *Client) GetBlockTime(ctx context.Context, slot uint64) (ts int64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_time", err, started)
	}()

	res, err := c.client.GetBlockTime(ctx, slot)
	if err != nil {
		return 0, err
	}
	if res == nil {
		err = fmt.Errorf("slot %d: %w", slot, ErrBlockTimeUnavailable)
		return 0, err
	}
	return int64(*res), nil
}

// GetVoteAccounts returns current and delinquent validators.
func (c *Client) GetVoteAccounts(ctx context.Context) (validators []model.ValidatorInfo, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_vote_accounts", err, started)
	}()

	res, err := c.client.GetVoteAccounts(ctx, &rpc.GetVoteAccountsOpts{Commitment: c.commitment})
	if err != nil {
		return nil, err
	}

	validators = make([]model.ValidatorInfo, 0, len(res.Current)+len(res.Delinquent))
	for _, v := range res.Current {
		validators = append(validators, toValidatorInfo(v, false))
	}
	for _, v := range res.Delinquent {
		validators = append(validators, toValidatorInfo(v, true))
	}
	return validators, nil
}

func toValidatorInfo(v rpc.VoteAccountsResult, delinquent bool) model.ValidatorInfo {
	return model.ValidatorInfo{
		VoteAccount:    v.VotePubkey.String(),
		Identity:       v.NodePubkey.String(),
		Commission:     v.Commission,
		LastVote:       v.LastVote,
		ActivatedStake: v.ActivatedStake,
		Delinquent:     delinquent,
	}
}

// GetRecentPerformanceSamples returns up to limit samples, newest first.
func (c *Client) GetRecentPerformanceSamples(ctx context.Context, limit uint) (samples []PerformanceSample, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_recent_performance_samples", err, started)
	}()

	res, err := c.client.GetRecentPerformanceSamples(ctx, &limit)
	if err != nil {
		return nil, err
	}

	samples = make([]PerformanceSample, 0, len(res))
	for _, s := range res {
		if s == nil {
			continue
		}
		samples = append(samples, PerformanceSample{
			Slot:             s.Slot,
			NumSlots:         s.NumSlots,
			NumTransactions:  s.NumTransactions,
			SamplePeriodSecs: s.SamplePeriodSecs,
		})
	}
	return samples, nil
}

// GetBlock fetches the header of slot's block without transactions or rewards.
func (c *Client) GetBlock(ctx context.Context, slot uint64) (ev model.RawEvent, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block", err, started)
	}()

	rewards := false
	maxVersion := uint64(0)
	res, err := c.client.GetBlockWithOpts(ctx, slot, &rpc.GetBlockOpts{
		TransactionDetails:             rpc.TransactionDetailsNone,
		Rewards:                        &rewards,
		Commitment:                     c.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return model.RawEvent{}, err
	}

	ev = model.RawEvent{Slot: slot, BlockHash: res.Blockhash.String()}
	if res.BlockTime != nil {
		ev.Timestamp = int64(*res.BlockTime)
	}
	return ev, nil
}

// IsSkippedSlot reports whether err means the slot has no block.
func IsSkippedSlot(err error) bool {
	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	switch rpcErr.Code {
	case codeBlockNotAvailable, codeSlotSkipped, codeLongTermStorageSlotSkipped:
		return true
	default:
		return false
	}
}

// AverageSlotTime derives milliseconds per slot from performance samples.
// ok is false when the samples cover no slots.
func AverageSlotTime(samples []PerformanceSample) (ms uint64, ok bool) {
	var slots, secs uint64
	for _, s := range samples {
		slots += s.NumSlots
		secs += uint64(s.SamplePeriodSecs)
	}
	if slots == 0 {
		return 0, false
	}
	return secs * 1000 / slots, true
}
