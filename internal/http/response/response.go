package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
}

// Pagination 分页元数据
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"total_page"`
}

// PageData 列表响应载荷
type PageData struct {
	List       interface{} `json:"list"`
	Pagination Pagination  `json:"pagination"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, attachRequestID(c, Response{
		StatusCode: CodeOK,
		Msg:        "ok",
		Data:       data,
	}))
}

// SuccessWithMsg 携带提示消息的成功响应
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, attachRequestID(c, Response{
		StatusCode: CodeOK,
		Msg:        msg,
		Data:       data,
	}))
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, attachRequestID(c, Response{
		StatusCode: CodeOK,
		Msg:        "ok",
		Data:       PageData{List: list, Pagination: pagination},
	}))
}

// Error 错误响应，HTTP 状态码跟随业务码
func Error(c *gin.Context, code int, msg string) {
	c.JSON(httpStatus(code), attachRequestID(c, Response{
		StatusCode: code,
		Msg:        msg,
	}))
}

// ErrorWithData 携带数据的错误响应，用于回显校验失败的字段
func ErrorWithData(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(httpStatus(code), attachRequestID(c, Response{
		StatusCode: code,
		Msg:        msg,
		Data:       data,
	}))
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// Forbidden 无权限
func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

func httpStatus(code int) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func attachRequestID(c *gin.Context, resp Response) Response {
	if v, ok := c.Get("request_id"); ok {
		if id, ok := v.(string); ok {
			resp.RequestID = id
		}
	}
	return resp
}
