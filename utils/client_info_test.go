package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewClientInfo(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want ClientInfo
	}{
		{
			"android chrome",
			"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Mobile Safari/537.36",
			ClientInfo{Device: "mobile", Browser: "Chrome", OS: "Android"},
		},
		{
			"ipad safari",
			"Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			ClientInfo{Device: "tablet", Browser: "Safari", OS: "iOS"},
		},
		{
			"windows edge",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36 Edg/126.0",
			ClientInfo{Device: "desktop", Browser: "Edge", OS: "Windows"},
		},
		{
			"linux firefox",
			"Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
			ClientInfo{Device: "desktop", Browser: "Firefox", OS: "Linux"},
		},
		{"empty", "", ClientInfo{Device: "desktop", Browser: "Other", OS: "Other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("User-Agent", tt.ua)

			got := NewClientInfo(c)
			tt.want.IP = "192.0.2.1"
			assert.Equal(t, tt.want, got)
			assert.Len(t, got.Fields(), 4)
		})
	}
}
