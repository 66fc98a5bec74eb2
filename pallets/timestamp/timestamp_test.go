package timestamp

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/chain/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	ctx := t.Context()
	var latest *chain.Hash
	client := mocks.NewClient(t)

	key, err := chain.NewStorageKey(Pallet, StorageNow)
	require.NoError(t, err)

	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, 1_700_000_000_000)
	client.EXPECT().QueryStorage(ctx, key, latest).Return(raw, true, nil).Once()

	ms, ok, err := Now(ctx, client, latest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1_700_000_000_000), ms)
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC), Time(ms))
}
