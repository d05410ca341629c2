package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/picklebay/picklebay/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	badSignatureResult = ginx.Result{
		Code: errs.BadSignature.Code,
		Msg:  errs.BadSignature.Msg,
	}
)
