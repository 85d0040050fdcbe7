// Package reqctx carries request-scoped data through context.Context.
//
// HTTP middleware stores a RequestMeta for every request and, when the
// request carries a valid access token, its claims. Services and the
// NATS worker read them back with the getters below.
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{RequestID: id})
//	ctx = reqctx.WithClaims(ctx, claims)
//
//	if user, ok := reqctx.UserIDFromContext(ctx); ok {
//	    ...
//	}
//
// Context keys are unexported, so values can only be set through this
// package.
package reqctx
