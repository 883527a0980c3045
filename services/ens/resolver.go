package ens

import (
	"context"

	goens "github.com/wealdtech/go-ens/v3"

	"github.com/unruggable-labs/agent0-go/services/ens/agentrecord"
)

// NameResolver adapts the API to agent record lookups on a fixed chain.
func (api *API) NameResolver(chainID uint64) agentrecord.NameResolver {
	return &chainNameResolver{api: api, chainID: chainID}
}

type chainNameResolver struct {
	api     *API
	chainID uint64
}

func (r *chainNameResolver) Resolver(ctx context.Context, name string) (agentrecord.TextResolver, error) {
	resolver, err := r.api.Resolver(ctx, r.chainID, name)
	if err != nil {
		return nil, err
	}
	return textResolver{resolver: resolver}, nil
}

type textResolver struct {
	resolver *goens.Resolver
}

func (t textResolver) Text(ctx context.Context, key string) (string, error) {
	return t.resolver.Text(key)
}
