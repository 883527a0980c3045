package agents

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/unruggable-labs/agent0-go/bigint"
)

// Agent is one registered identity, as read back from the registry.
type Agent struct {
	ChainID     uint64         `json:"chainId"`
	TokenID     *bigint.BigInt `json:"tokenId"`
	Owner       common.Address `json:"owner"`
	MetadataURI string         `json:"metadataUri"`

	// ENSName is set when the agent was looked up through a name rather
	// than a token identifier.
	ENSName string `json:"ensName,omitempty"`
}

// Metadata is the registration document an agent publishes behind its
// token URI. Only the fields the SDK interprets are typed; everything
// else stays raw.
type Metadata struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Endpoints   []string        `json:"endpoints,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

// FeedbackSummary aggregates on-chain feedback for one agent and tag.
type FeedbackSummary struct {
	Count        uint64 `json:"count"`
	AverageScore uint8  `json:"averageScore"`
}

// Feedback is the off-chain document published alongside a feedback
// transaction.
type Feedback struct {
	ID      string `json:"id"`
	AgentID string `json:"agentId"`
	Score   uint8  `json:"score"`
	Tag     string `json:"tag,omitempty"`
	Comment string `json:"comment,omitempty"`
}
