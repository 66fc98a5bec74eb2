// Package facility reads the enclave versions registered in the facility
// pallet and defines the device identity shared with the mining pallet.
package facility

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const (
	Pallet = "Facility"

	StorageHashToVersion = "HashToVersion"
	StorageVersionList   = "VersionList"
)

// DIdentity is a device identity: the enclave version and its public key.
type DIdentity struct {
	Version uint16
	PK      []byte
}

// HashToVersion returns the enclave hash registered for version.
func HashToVersion(ctx context.Context, c chain.Client, version uint16, at *chain.Hash) ([]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageHashToVersion, version)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

// VersionList returns every accepted enclave version, falling back to the
// runtime default.
func VersionList(ctx context.Context, c chain.Client, at *chain.Hash) ([]uint16, error) {
	key, err := chain.NewStorageKey(Pallet, StorageVersionList)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrDefault[[]uint16](ctx, c, key, at)
}
