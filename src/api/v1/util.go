package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// writeErr maps engine error kinds onto the stable API error codes. Reasons
// pass through so callers see what was rejected; internal errors stay
// opaque.
func writeErr(c *gin.Context, err error) {
	switch ordermanager.KindOf(err) {
	case ordermanager.KindUnauthorized:
		xhttp.Error(c, errcode.NewErr(errcode.CodeUnauthorized, err.Error()))
	case ordermanager.KindInvalidInput:
		xhttp.Error(c, errcode.NewErr(errcode.CodeInvalidParams, err.Error()))
	case ordermanager.KindInsufficientFunds:
		xhttp.Error(c, errcode.NewErr(errcode.CodeInsufficientFunds, err.Error()))
	case ordermanager.KindNoMatchFound:
		xhttp.Error(c, errcode.ErrNoMatchFound)
	default:
		xhttp.Error(c, errcode.ErrInternal)
	}
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
