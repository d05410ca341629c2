package errs

var (
	SystemError  = ErrorCode{Code: 504001, Msg: "system error"}
	BadSignature = ErrorCode{Code: 401002, Msg: "webhook signature verification failed"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
