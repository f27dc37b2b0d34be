package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func allow(c *gin.Context, methods string) {
	c.Header("allow", methods)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	allow(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	allow(c, "OPTIONS, POST")
}

func OptionsGetPost(c *gin.Context) {
	allow(c, "OPTIONS, GET, POST")
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, DELETE")
}

func OptionsPostDelete(c *gin.Context) {
	allow(c, "OPTIONS, POST, DELETE")
}

func OptionsGetPostDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, POST, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, PATCH, DELETE")
}
