package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProductID — идентификатор не является положительным целым числом.
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrUpstreamTimeout — каталог не ответил за отведённое время (подключение или ответ).
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrInvalidEvent — событие из очереди не удалось разобрать.
	ErrInvalidEvent = errors.New("invalid product event")
)

// NotFoundError — каталог ответил 404 для товара.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ID)
}

// UpstreamError — любой другой сбой при обращении к каталогу:
// статус 4xx/5xx, ошибка транспорта или некорректное тело ответа.
type UpstreamError struct {
	Op         string // операция клиента (detail, similar_ids)
	StatusCode int    // 0, если ответа не было
	Body       string // обрезанное тело ответа
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := "upstream " + e.Op
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Body != "" {
		msg += " body=" + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnexpectedError — всё, что не попало в остальные категории (например, паника в обработчике).
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	if e.Cause == nil {
		return "unexpected error"
	}
	return e.Cause.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Cause }
