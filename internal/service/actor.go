package service

import "context"

// Actor пользователь, от имени которого выполняется запрос.
type Actor struct {
	ID      int64
	Cashier bool
}

type actorCtxKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}

// modifiedBy id актора из контекста, иначе fallback.
func modifiedBy(ctx context.Context, fallback int64) int64 {
	if actor, ok := ActorFromContext(ctx); ok && actor.ID != 0 {
		return actor.ID
	}
	return fallback
}

// ContextAuthorizer дает право применять скидку кассирам.
type ContextAuthorizer struct{}

func (ContextAuthorizer) HasDiscountPrivilege(ctx context.Context) bool {
	actor, ok := ActorFromContext(ctx)
	return ok && actor.Cashier
}
