// internal/service/checkout/domain/validation.go
package domain

import "strings"

// PaymentMethodCard 表示银行卡支付，只有这种方式需要校验卡片信息。
const PaymentMethodCard = "card"

// requiredFields 固定了必填字段的校验顺序，报错时按这个顺序短路。
var requiredFields = []struct {
	name  string
	value func(a *ShippingAddress) string
}{
	{"firstName", func(a *ShippingAddress) string { return a.FirstName }},
	{"lastName", func(a *ShippingAddress) string { return a.LastName }},
	{"email", func(a *ShippingAddress) string { return a.Email }},
	{"phone", func(a *ShippingAddress) string { return a.Phone }},
	{"address1", func(a *ShippingAddress) string { return a.Address1 }},
	{"city", func(a *ShippingAddress) string { return a.City }},
	{"postcode", func(a *ShippingAddress) string { return a.Postcode }},
	{"country", func(a *ShippingAddress) string { return a.Country }},
}

// Validate 检查必填字段是否全部非空白，返回第一个缺失字段的 ValidationError。
func (a *ShippingAddress) Validate() error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(a)) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// CardDetails 是银行卡表单的原始输入。
type CardDetails struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"cardExpiry"`
	CVV    string `json:"cardCVV"`
}

// Validate 校验卡片信息：卡号去空格后至少 13 位数字，
// 有效期必须是 5 个字符的 MM/YY，CVV 至少 3 位。
func (c *CardDetails) Validate() error {
	number := strings.ReplaceAll(c.Number, " ", "")
	if len(number) < 13 || !allDigits(number) {
		return &PaymentValidationError{Reason: "card number must have at least 13 digits"}
	}
	if len(c.Expiry) != 5 || c.Expiry[2] != '/' || !allDigits(c.Expiry[:2]) || !allDigits(c.Expiry[3:]) {
		return &PaymentValidationError{Reason: "expiry date must be in MM/YY format"}
	}
	if len(c.CVV) < 3 || !allDigits(c.CVV) {
		return &PaymentValidationError{Reason: "CVV must have at least 3 digits"}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
