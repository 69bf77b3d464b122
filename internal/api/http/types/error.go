// Package types provides HTTP error type definitions.
package types

// ErrorResponse 统一错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Code      string `json:"code"`                // 错误码
	Message   string `json:"message"`             // 错误消息
	RequestID string `json:"requestId,omitempty"` // 请求ID
}

// 错误码常量
const (
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnknownContract = "UNKNOWN_CONTRACT"
	ErrNotFound        = "NOT_FOUND"
	ErrInternal        = "INTERNAL"
)

// NewErrorResponse 创建错误响应
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithRequestID 添加请求ID
func (e *ErrorResponse) WithRequestID(requestID string) *ErrorResponse {
	e.Error.RequestID = requestID
	return e
}
