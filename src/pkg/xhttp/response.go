package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
)

// Response is the uniform API envelope.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// OkJson writes a success envelope.
func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: errcode.CodeOK, Msg: "success", Data: data})
}

// Error writes an error envelope. *errcode.Err values keep their code,
// anything else is reported as a custom error.
func Error(c *gin.Context, err error) {
	e, ok := err.(*errcode.Err)
	if !ok {
		e = errcode.NewCustomErr(err.Error())
	}
	c.JSON(http.StatusOK, Response{Code: e.Code, Msg: e.Msg})
}
