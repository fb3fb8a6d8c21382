package config

import (
	"os"
	"path/filepath"
	"testing"

	"NFTAuctionEngine/src/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalConfig(t *testing.T) {
	raw := `
[api]
port = ":9000"
max_num = 50

[log]
mode = "console"
level = "info"

[db]
driver = "sqlite"
dsn = "file::memory:"
auto_migrate = true

[auction]
max_fee_bps = 1500
early_close_no_bid = "reject"
operator = "auction_engine"
admins = ["0xabc"]
artists = ["0xdef"]
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := UnmarshalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Api.Port)
	assert.Equal(t, int64(50), cfg.Api.MaxNum)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, int64(1500), cfg.Auction.MaxFeeBps)
	assert.Equal(t, engine.EarlyCloseReject, cfg.Auction.EarlyCloseNoBid)
	assert.Equal(t, []string{"0xabc"}, cfg.Auction.Admins)
	assert.Equal(t, []string{"0xdef"}, cfg.Auction.Artists)
}

func TestUnmarshalConfigDefaults(t *testing.T) {
	raw := `
[api]
port = ":9000"

[auction]
admins = ["0xabc"]
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := UnmarshalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), cfg.Auction.MaxFeeBps)
	assert.Equal(t, engine.EarlyCloseCancel, cfg.Auction.EarlyCloseNoBid)
}
