package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	resp "go-journal-api/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// AErr 统一错误对象，code 同时决定响应体 code 和 HTTP 状态
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string   // GET / POST / PATCH / PUT / DELETE
	Path    string   // 例："/entries/:id"
	Binder  Binder   // 绑定方式
	Auth    bool     // 是否要求登录（检查 userId）
	Roles   []string // 限定角色（可选）
	UseTx   bool     // 是否包事务（多步写入时开）
	Handler func(c *gin.Context, db *gorm.DB, in *I) (O, error)
}

// RegisterAction 注册动作接口：鉴权 → 绑定 → 执行（可选事务）→ 统一错误映射
func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		if a.Auth {
			uid := c.GetString("userId")
			if uid == "" {
				writeErr(c, resp.CodeUnauthorized, "unauthorized")
				return
			}
			if len(a.Roles) > 0 && !roleAllowed(c.GetString("role"), a.Roles) {
				writeErr(c, resp.CodeForbidden, "forbidden")
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			writeErr(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := a.Handler(c, tx, &in)
				out = o
				return e
			})
		} else {
			out, err = a.Handler(c, db.WithContext(c), &in)
		}

		if err != nil {
			writeMappedErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// writeMappedErr 领域错误 → 状态码。未识别的错误一律 500 且不外泄内部信息，
// 具体原因由 access log / gin errors 记录。
func writeMappedErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFoundOrForbidden):
		writeErr(c, resp.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmailTaken):
		writeErr(c, resp.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeErr(c, resp.CodeUnauthorized, err.Error())
	default:
		var ae *AErr
		if errors.As(err, &ae) {
			if ae.Err != nil {
				_ = c.Error(ae.Err)
			}
			writeErr(c, ae.Code, ae.Error())
			return
		}
		_ = c.Error(err)
		writeErr(c, resp.CodeServerError, "internal error")
	}
}

func writeErr(c *gin.Context, code int, msg string) {
	c.JSON(httpStatusOf(code), resp.Error(code, msg))
}

// httpStatusOf 响应体 code 与 HTTP 状态保持一致
func httpStatusOf(code int) int {
	if code == resp.CodeOK {
		return http.StatusOK
	}
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusInternalServerError
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
