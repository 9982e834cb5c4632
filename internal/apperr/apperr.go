// Package apperr 定义领域层的类型化错误，并映射为 HTTP 状态码。
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Code 错误码，返回给客户端
type Code string

const (
	CodeNotFound          Code = "not_found"
	CodeIllegalTransition Code = "illegal_transition"
	CodeInvalidPeriod     Code = "invalid_period"
	CodeValidation        Code = "validation_error"
	CodeBadRequest        Code = "bad_request"
	CodeTooManyRequests   Code = "too_many_requests"
	CodeInternal          Code = "internal"
)

// NotFoundError 目标实体不存在
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// IllegalTransitionError 状态流转不在状态图内
type IllegalTransitionError struct {
	EntityType string
	ID         string
	From       string
	To         string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s status transition %s -> %s (id=%s)", e.EntityType, e.From, e.To, e.ID)
}

// InvalidPeriodError 不支持的统计周期
type InvalidPeriodError struct {
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q, expected weekly|monthly|yearly", e.Period)
}

// ValidationError 字段校验失败，Fields: 字段 -> 原因
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CooldownError 操作过于频繁
type CooldownError struct {
	RetryAfterSeconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("too many requests, retry after %ds", e.RetryAfterSeconds)
}

// ==================== 构造 ====================

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IllegalTransition(entityType, id, from, to string) error {
	return &IllegalTransitionError{EntityType: entityType, ID: id, From: from, To: to}
}

func InvalidPeriod(period string) error {
	return &InvalidPeriodError{Period: period}
}

func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// ==================== 判断 ====================

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsIllegalTransition(err error) bool {
	var e *IllegalTransitionError
	return errors.As(err, &e)
}

// CodeOf 错误码
func CodeOf(err error) Code {
	var (
		nf *NotFoundError
		it *IllegalTransitionError
		ip *InvalidPeriodError
		ve *ValidationError
		ce *CooldownError
		br *BadRequestError
	)
	switch {
	case errors.As(err, &nf):
		return CodeNotFound
	case errors.As(err, &it):
		return CodeIllegalTransition
	case errors.As(err, &ip):
		return CodeInvalidPeriod
	case errors.As(err, &ve):
		return CodeValidation
	case errors.As(err, &ce):
		return CodeTooManyRequests
	case errors.As(err, &br):
		return CodeBadRequest
	}
	return CodeInternal
}

// HTTPStatus 错误对应的 HTTP 状态码
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeIllegalTransition:
		return http.StatusConflict
	case CodeInvalidPeriod, CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// FieldsOf 校验错误的字段明细
func FieldsOf(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// ==================== 响应体 ====================

// Response 统一错误响应体
type Response struct {
	Code   Code              `json:"code"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ResponseOf 由错误构造响应体，内部错误不向客户端暴露细节
func ResponseOf(err error) Response {
	code := CodeOf(err)
	msg := err.Error()
	if code == CodeInternal {
		msg = "internal server error"
	}
	return Response{Code: code, Error: msg, Fields: FieldsOf(err)}
}

// BadRequest 请求参数错误
func BadRequest(msg string) error {
	return &BadRequestError{Msg: msg}
}

// BadRequestError 请求参数错误
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }
