package model

import (
	"bytes"
	"encoding/json"
)

// Optional поле частичного обновления с тремя состояниями:
// не передано (Set=false), явный null (Set=true, Valid=false), значение (Set=true, Valid=true).
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some возвращает заданное значение.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null возвращает явную очистку поля.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Cleared сообщает, что поле нужно очистить.
func (o Optional[T]) Cleared() bool {
	return o.Set && !o.Valid
}

// UnmarshalJSON вызывается только для присутствующих в теле полей, в том числе для null.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// EmptyAsNull трактует пустую строку как очистку поля.
func EmptyAsNull(o Optional[string]) Optional[string] {
	if o.Set && o.Valid && o.Value == "" {
		return Null[string]()
	}
	return o
}
