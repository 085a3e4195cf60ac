package domain

import "errors"

// 服务层统一错误；transport 层据此映射 HTTP 状态码。
// “不存在”与“非本人”合并为同一个错误，避免向非所有者泄露条目是否存在。
var (
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrValidation          = errors.New("missing required field")
)
