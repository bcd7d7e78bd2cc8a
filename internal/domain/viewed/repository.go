package viewed

import "context"

// Storage es un key/value durable (el "local storage" del visitante del lado servidor).
// Get devuelve found=false si la clave no existe.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

const storageKeyPrefix = "viewed_pets"

// StorageKey arma la clave de un visitante; una clave por visitante.
func StorageKey(visitorID string) string {
	return storageKeyPrefix + ":" + visitorID
}
