package repository

import "errors"

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

// Keys of the shared key-value persistence surface. Every component that
// touches a key goes through the KV interface; there are no ambient globals.
const (
	KeyProducts      = "products"
	KeyAdminPassword = "admin/password"
	CartKeyPrefix    = "cart/"
	UploadKeyPrefix  = "uploads/"
)

// ChangeFunc is invoked after a write to a subscribed key. The value is nil
// when the key was deleted.
type ChangeFunc func(key string, value []byte)

// KV is the versionless keyed document store shared across views. Writes are
// last-writer-wins; Put and Delete fire change notifications synchronously in
// the order mutations are issued.
type KV interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte)
	Delete(key string)
	// Subscribe registers fn for writes to key; an empty key subscribes to
	// every write. The returned func cancels the subscription.
	Subscribe(key string, fn ChangeFunc) (cancel func())
}
