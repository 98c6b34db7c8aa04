package config

import (
	"testing"
	"time"
)

func TestDefaultHTTPClientConfig(t *testing.T) {
	if DefaultHTTPClientConfig.Timeout != 30*time.Second {
		t.Errorf("Expected Timeout 30s, got %v", DefaultHTTPClientConfig.Timeout)
	}

	if DefaultHTTPClientConfig.MaxIdleConns != APIRequestMaxIdleConns {
		t.Errorf("Expected MaxIdleConns %d, got %d", APIRequestMaxIdleConns, DefaultHTTPClientConfig.MaxIdleConns)
	}

	if DefaultHTTPClientConfig.UserAgent == "" {
		t.Error("Expected a default user agent")
	}
}

func TestHTTPClientConfigWithTimeout(t *testing.T) {
	base := DefaultHTTPClientConfig

	updated := base.WithTimeout(5 * time.Second)
	if updated.Timeout != 5*time.Second {
		t.Errorf("Expected Timeout 5s, got %v", updated.Timeout)
	}
	if base.Timeout != APIRequestTimeout {
		t.Errorf("WithTimeout modified the receiver: got %v", base.Timeout)
	}

	unchanged := base.WithTimeout(0)
	if unchanged.Timeout != APIRequestTimeout {
		t.Errorf("Expected zero timeout to be ignored, got %v", unchanged.Timeout)
	}
}
