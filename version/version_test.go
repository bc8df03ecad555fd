package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	dev := Info{Version: "dev", CommitHash: "0123456789abcdef", BuildTime: "unknown"}
	assert.Equal(t, "whence dev-0123456 (commit 0123456789abcdef, built unknown)", dev.String())

	tagged := Info{Version: "v1.2.0", CommitHash: "0123456", BuildTime: "2026-08-31"}
	assert.Equal(t, "whence v1.2.0 (commit 0123456, built 2026-08-31)", tagged.String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0123456", Info{CommitHash: "0123456789abcdef"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGetCapturesRuntime(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
