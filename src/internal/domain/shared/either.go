package shared

import "errors"

// ===========================
// Either 安全結果
// ===========================

// Either 恰好持有成功值或類型化失敗其中之一
//
// 零值不是合法的 Either，請使用 Ok / Fail / Safe 建立。
type Either[T any] struct {
	value   T
	failure CodedError
	ok      bool
}

// Ok 建立成功結果
func Ok[T any](value T) Either[T] {
	return Either[T]{value: value, ok: true}
}

// Fail 建立失敗結果（failure 不可為 nil）
func Fail[T any](failure CodedError) Either[T] {
	if failure == nil {
		panic("Fail: failure must not be nil")
	}
	return Either[T]{failure: failure}
}

// Safe 執行 factory 一次並把預期內的失敗轉為值
//
//   - factory 正常完成 → Ok(value)
//   - 返回的錯誤可用 errors.As 取得 CodedError → Fail(該錯誤)
//   - 其他錯誤原樣作為第二個返回值（不吞掉）
//
// factory 中的 panic 不會被 recover。
func Safe[T any](factory func() (T, error)) (Either[T], error) {
	value, err := factory()
	if err == nil {
		return Ok(value), nil
	}

	var coded CodedError
	if errors.As(err, &coded) {
		return Fail[T](coded), nil
	}
	return Either[T]{}, err
}

// IsOk 是否為成功結果
func (e Either[T]) IsOk() bool {
	return e.ok
}

// IsFail 是否為失敗結果
func (e Either[T]) IsFail() bool {
	return !e.ok && e.failure != nil
}

// Value 返回成功值（失敗時為零值）
func (e Either[T]) Value() T {
	return e.value
}

// Failure 返回失敗（成功時為 nil）
func (e Either[T]) Failure() CodedError {
	return e.failure
}

// Unwrap 轉回 Go 慣用的 (value, error) 形式
func (e Either[T]) Unwrap() (T, error) {
	if e.ok {
		return e.value, nil
	}
	var zero T
	if e.failure == nil {
		return zero, errors.New("either: uninitialized result")
	}
	return zero, e.failure
}

// OrElse 失敗時返回 fallback
func (e Either[T]) OrElse(fallback T) T {
	if e.ok {
		return e.value
	}
	return fallback
}

// Map 轉換成功值，失敗原樣傳遞
func Map[T, U any](e Either[T], fn func(T) U) Either[U] {
	if e.ok {
		return Ok(fn(e.value))
	}
	return Either[U]{failure: e.failure}
}

// FlatMap 以另一個可能失敗的步驟串接
func FlatMap[T, U any](e Either[T], fn func(T) Either[U]) Either[U] {
	if e.ok {
		return fn(e.value)
	}
	return Either[U]{failure: e.failure}
}
