package errs

var (
	SystemError  = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 515002, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
