package helpers

import (
	"fmt"
	"time"
)

// NewRunToken generates a unique token for a script invocation.
// The token is embedded in the temp result/log file names so that
// concurrent invocations never collide on the same files.
func NewRunToken(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
