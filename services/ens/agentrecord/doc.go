// Package agentrecord implements the ENS agent-registry text record
// convention: an ENSIP-25 style binding between an ENS name and an agent
// registered in an on-chain identity registry.
//
// A binding lives in a text record whose key is "agent-registry:" followed
// by the lowercase hex encoding of an ERC-7930 chain-only interoperable
// address (version, chain type, chain reference, empty address). The record
// value carries the registry contract address (EIP-55 checksummed), a one
// byte agent id length and the agent id itself as big-endian hex.
//
// Encode and decode functions raise descriptive errors on malformed input.
// The fetch and load paths never do: resolution failures, transport errors
// and malformed values all collapse to absence, so a verification caller
// only ever observes "record" or "no record".
package agentrecord
