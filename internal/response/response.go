package response

import (
	"net/http"

	"solana-api/internal/errorx"
)

// Result 内部使用的成功/失败二选一结果，只在边界处转成 Envelope
type Result[T any] struct {
	data *T
	err  error
}

func Ok[T any](data *T) Result[T] {
	return Result[T]{data: data}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("response: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// From 直接接收 logic 的 (data, err) 返回值
func From[T any](data *T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(data)
}

func (r Result[T]) Err() error { return r.err }

// Envelope 对外的线上格式，data / error 恰好出现一个
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Envelope 返回 HTTP 状态码与响应体
func (r Result[T]) Envelope() (int, Envelope[T]) {
	if r.err != nil {
		msg := errorx.PublicMessage(r.err)
		return errorx.StatusOf(r.err), Envelope[T]{Success: false, Error: &msg}
	}
	data := r.data
	if data == nil {
		data = new(T)
	}
	return http.StatusOK, Envelope[T]{Success: true, Data: data}
}
