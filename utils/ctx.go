package utils

import "github.com/gin-gonic/gin"

func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentSession(c *gin.Context) string {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
