package routing

import "context"

type paramsKey struct{}

// NewContextWithParams returns a context carrying path parameter values
// extracted by Table.Match.
func NewContextWithParams(ctx context.Context, params map[string]string) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// ParamsFromContext returns the path parameters stored by
// NewContextWithParams, or nil when none are present.
func ParamsFromContext(ctx context.Context) map[string]string {
	params, _ := ctx.Value(paramsKey{}).(map[string]string)
	return params
}
