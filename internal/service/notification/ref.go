package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
)

// Ref points at an object owned by the host application: a type
// discriminator plus an opaque id.
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (r Ref) String() string {
	return r.Type + ":" + r.ID
}

// ActorOf returns the actor reference stored on n.
func ActorOf(n *repo.Notification) Ref {
	return Ref{Type: n.ActorContentType, ID: n.ActorObjectID}
}

// TargetOf returns the target reference of n, if it has one.
func TargetOf(n *repo.Notification) (Ref, bool) {
	return optionalRef(n.TargetContentType, n.TargetObjectID)
}

// ActionObjectOf returns the action object reference of n, if it has one.
func ActionObjectOf(n *repo.Notification) (Ref, bool) {
	return optionalRef(n.ActionObjectContentType, n.ActionObjectObjectID)
}

func optionalRef(typ, id *string) (Ref, bool) {
	if typ == nil || id == nil {
		return Ref{}, false
	}
	return Ref{Type: *typ, ID: *id}, true
}

// newest orders by timestamp, then id, both descending.
func newest() []entnotif.OrderOption {
	return []entnotif.OrderOption{
		entnotif.ByTimestamp(sql.OrderDesc()),
		entnotif.ByID(sql.OrderDesc()),
	}
}

// withTx runs fn inside a transaction, rolling back when fn fails or panics.
func withTx(ctx context.Context, client *repo.Client, fn func(tx *repo.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
