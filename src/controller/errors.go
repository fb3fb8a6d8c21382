package controller

import (
	"NFTAuctionEngine/src/engine"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// fail maps engine domain errors to business error envelopes and hides
// infrastructure faults behind the generic unexpected error.
func fail(c *gin.Context, err error) {
	cause := errors.Cause(err)
	if engine.IsDomainError(cause) {
		xhttp.Error(c, errcode.NewCustomErr(cause.Error()))
		return
	}
	xhttp.Error(c, errcode.ErrUnexpected)
}
