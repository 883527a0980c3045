package agentrecord

import (
	"context"
	"math/big"
	"strings"
)

// TextResolver serves ENS text records for a single name.
type TextResolver interface {
	Text(ctx context.Context, key string) (string, error)
}

// NameResolver resolves an ENS name to its text record resolver. A nil
// resolver with a nil error means the name has no resolver set.
type NameResolver interface {
	Resolver(ctx context.Context, name string) (TextResolver, error)
}

// FetchRecordValue looks up the text record for key on name. The key is
// lowercased before lookup. Any resolution or transport failure, a missing
// resolver and an unset record all report absence; errors never escape this
// boundary. No validation of the value's shape happens here.
func FetchRecordValue(ctx context.Context, resolver NameResolver, name, key string) (string, bool) {
	key = strings.ToLower(key)

	textResolver, err := resolver.Resolver(ctx, name)
	if err != nil || textResolver == nil {
		return "", false
	}

	value, err := textResolver.Text(ctx, key)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}

// Load builds the record key for chainReference, fetches the value bound to
// name and decodes it, using the default namespace.
func Load(ctx context.Context, resolver NameResolver, name string, chainReference *big.Int) (*Record, error) {
	return LoadInNamespace(ctx, resolver, name, chainReference, DefaultNamespace)
}

// LoadInNamespace is Load for an arbitrary namespace. An absent or
// malformed record yields (nil, nil); the error return carries usage errors
// only (unknown namespace, invalid chain reference), so verification
// callers check for absence rather than catching decode failures.
func LoadInNamespace(ctx context.Context, resolver NameResolver, name string, chainReference *big.Int, namespace string) (*Record, error) {
	key, err := TextRecordKeyInNamespace(chainReference, namespace)
	if err != nil {
		return nil, err
	}

	value, ok := FetchRecordValue(ctx, resolver, name, key)
	if !ok {
		return nil, nil
	}

	record, err := DecodeRecordValue(value)
	if err != nil {
		return nil, nil
	}

	// The value segment carries no chain reference of its own; bind the
	// record to the chain its key was derived from.
	record.ChainReference = new(big.Int).Set(chainReference)

	return record, nil
}
