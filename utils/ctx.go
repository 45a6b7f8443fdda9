package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
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
