package types

import (
	"fmt"
	"strings"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Checkpoint records the voting power an account held from a block on.
type Checkpoint struct {
	FromBlock uint64  `json:"from_block" yaml:"from_block"`
	Votes     sdk.Int `json:"votes" yaml:"votes"`
}

func NewCheckpoint(fromBlock uint64, votes sdk.Int) Checkpoint {
	return Checkpoint{FromBlock: fromBlock, Votes: votes}
}

func (c Checkpoint) String() string {
	return fmt.Sprintf("%d:%s", c.FromBlock, c.Votes)
}

// Checkpoints is the history of one account, oldest first.
type Checkpoints []Checkpoint

func (cs Checkpoints) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Latest returns the power of the last checkpoint, zero when there is none.
func (cs Checkpoints) Latest() sdk.Int {
	if len(cs) == 0 {
		return sdk.ZeroInt()
	}
	return cs[len(cs)-1].Votes
}

// Validate checks that markers strictly increase and powers are non-negative.
func (cs Checkpoints) Validate() error {
	for i, c := range cs {
		if c.Votes.IsNegative() {
			return fmt.Errorf("checkpoint %d has negative votes %s", i, c.Votes)
		}
		if i > 0 && cs[i-1].FromBlock >= c.FromBlock {
			return fmt.Errorf("checkpoint %d at block %d does not follow block %d", i, c.FromBlock, cs[i-1].FromBlock)
		}
	}
	return nil
}
