// internal/service/checkout/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCart 表示在空购物车上尝试下单。
// 调用方应当拦截这次流转并引导用户回到商品列表。
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError 表示某个必填的收货字段缺失。
// 校验是快速失败的：只报告第一个缺失的字段，不做聚合。
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PaymentValidationError 表示银行卡信息不合法。
type PaymentValidationError struct {
	Reason string
}

func (e *PaymentValidationError) Error() string {
	return fmt.Sprintf("invalid payment details: %s", e.Reason)
}
