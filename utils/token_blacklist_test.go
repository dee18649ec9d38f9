package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scribeapp/scribe/utils"
)

func TestBlacklistTokenRevokes(t *testing.T) {
	token := "revoked-token-" + time.Now().Format(time.RFC3339Nano)
	assert.False(t, utils.IsTokenBlacklisted(token))

	utils.BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, utils.IsTokenBlacklisted(token))
}

func TestBlacklistEntryExpires(t *testing.T) {
	token := "expired-entry-" + time.Now().Format(time.RFC3339Nano)
	utils.BlacklistToken(token, time.Now().Add(-time.Second))
	assert.False(t, utils.IsTokenBlacklisted(token), "revocation ends with the token's own lifetime")
}
