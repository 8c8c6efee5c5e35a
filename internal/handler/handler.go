package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/zeromicro/go-zero/rest/httpx"

	"solana-api/internal/errorx"
	"solana-api/internal/response"
	"solana-api/internal/svc"
	"solana-api/internal/types"
	"solana-api/pkg/logger"
)

var errInvalidUTF8 = errors.New("request body is not valid utf-8")

type logicFunc[Req, Resp any] func(ctx context.Context, svcCtx *svc.ServiceContext, req *Req) (*Resp, error)

// jsonHandler 解析请求体 -> 调用 logic -> 写统一响应信封
func jsonHandler[Req, Resp any](svcCtx *svc.ServiceContext, call logicFunc[Req, Resp]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		// 无字段的请求不读 body，任何 body 都接受
		if _, empty := any(&req).(*types.EmptyRequest); !empty {
			if err := parseBody(r, &req); err != nil {
				writeResult(w, r, response.Fail[Resp](err))
				return
			}
		}

		resp, err := call(r.Context(), svcCtx, &req)
		writeResult(w, r, response.From(resp, err))
	}
}

// parseBody 空 body 等价于 {}；字段类型/范围不对（如 decimals=256）归为 InvalidRequestBody
func parseBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errorx.ErrInvalidRequestBody.Wrap(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	// encoding/json 会把非法字节替换成 U+FFFD，签名的就不是调用方给的字节了
	if !utf8.Valid(body) {
		return errorx.ErrInvalidRequestBody.Wrap(errInvalidUTF8)
	}
	body, err = exactKeys(body, v)
	if err != nil {
		return errorx.ErrInvalidRequestBody.Wrap(err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errorx.ErrInvalidRequestBody.Wrap(err)
	}
	return nil
}

// exactKeys 只保留与 json tag 完全一致的顶层 key。
// encoding/json 按大小写不敏感匹配字段，"MINT" 会被当成 "mint"
func exactKeys(body []byte, v any) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	known := jsonFieldNames(reflect.TypeOf(v).Elem())
	for k := range fields {
		if _, ok := known[k]; !ok {
			delete(fields, k)
		}
	}
	return json.Marshal(fields)
}

func jsonFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			names[name] = struct{}{}
		}
	}
	return names
}

func writeResult[T any](w http.ResponseWriter, r *http.Request, res response.Result[T]) {
	if err := res.Err(); err != nil {
		// cause 只进日志，不进响应
		logger.Warnw("request rejected", "path", r.URL.Path, "kind", errorx.KindOf(err).String(), "detail", errorx.Detail(err))
	}
	status, env := res.Envelope()
	httpx.WriteJsonCtx(r.Context(), w, status, env)
}
