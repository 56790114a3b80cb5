package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientInfo is what a sign-in log line records about the visitor's device.
type ClientInfo struct {
	IP      string
	Device  string
	Browser string
	OS      string
}

func NewClientInfo(c *gin.Context) ClientInfo {
	ua := strings.ToLower(c.GetHeader("User-Agent"))
	return ClientInfo{
		IP:      c.ClientIP(),
		Device:  deviceType(ua),
		Browser: browser(ua),
		OS:      operatingSystem(ua),
	}
}

// Fields renders the info as zap fields.
func (i ClientInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("ip", i.IP),
		zap.String("device", i.Device),
		zap.String("browser", i.Browser),
		zap.String("os", i.OS),
	}
}

func deviceType(ua string) string {
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android"):
		return "mobile"
	}
	return "desktop"
}

func browser(ua string) string {
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// Android and iOS user agents also mention Linux and Mac OS, so they go first.
func operatingSystem(ua string) string {
	switch {
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}
