package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/metrics"
	"github.com/goodnatureofminers/sni-backend/internal/solana"
)

type healthCommand struct {
	RPCURL     string        `long:"rpc-url" env:"SNI_RPC_URL" description:"Solana RPC URL" default:"https://api.mainnet-beta.solana.com"`
	Commitment string        `long:"commitment" env:"SNI_COMMITMENT" description:"commitment level" default:"confirmed"`
	Timeout    time.Duration `long:"timeout" env:"SNI_REQUEST_TIMEOUT" description:"timeout for each RPC request" default:"30s"`

	ctx context.Context
	out io.Writer
}

type networkProbe interface {
	GetSlot(ctx context.Context) (uint64, error)
	GetEpochInfo(ctx context.Context) (solana.EpochInfo, error)
	GetVersion(ctx context.Context) (string, error)
	GetBlockTime(ctx context.Context, slot uint64) (int64, error)
}

func (c *healthCommand) Execute(_ []string) error {
	client, err := solana.NewClient(c.RPCURL, c.Commitment, c.Timeout, metrics.NewRPCClient(c.RPCURL))
	if err != nil {
		return fmt.Errorf("init solana rpc client: %w", err)
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return checkNetwork(c.ctx, client, time.Now(), c.RPCURL, out)
}

func checkNetwork(ctx context.Context, client networkProbe, now time.Time, endpoint string, out io.Writer) error {
	slot, err := client.GetSlot(ctx)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}
	epoch, err := client.GetEpochInfo(ctx)
	if err != nil {
		return fmt.Errorf("get epoch info: %w", err)
	}
	nodeVersion, err := client.GetVersion(ctx)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	lag := "unknown"
	blockTime, err := client.GetBlockTime(ctx, slot)
	switch {
	case err == nil:
		lag = now.Sub(time.Unix(blockTime, 0)).Truncate(time.Second).String()
	case errors.Is(err, solana.ErrBlockTimeUnavailable):
	default:
		return fmt.Errorf("get block time: %w", err)
	}

	_, err = fmt.Fprintf(out,
		"endpoint:  %s\nslot:      %d\nepoch:     %d (slot %d/%d)\nversion:   %s\nblock lag: %s\n",
		endpoint, slot, epoch.Epoch, epoch.SlotIndex, epoch.SlotsInEpoch, nodeVersion, lag)
	return err
}
