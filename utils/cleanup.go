package utils

import "time"

// StartBlacklistJanitor launches a background sweep that drops expired
// revocations from the in-memory token blacklist. Redis entries carry their
// own TTL and need no sweeping.
func StartBlacklistJanitor(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		for {
			time.Sleep(interval)

			now := time.Now()
			blacklistMu.Lock()
			for token, entry := range blacklist {
				if now.After(entry.expiresAt) {
					delete(blacklist, token)
				}
			}
			blacklistMu.Unlock()
		}
	}()
}
