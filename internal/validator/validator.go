package validator

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// 違反は呼び出し側がHTTPエラーに変換する
type Violation struct {
	Field   string
	Message string
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// 必須文字列（trim後に1..max文字）
func CheckRequiredString(field string, v string, max int, out []Violation) []Violation {
	t := strings.TrimSpace(v)
	if t == "" {
		return append(out, Violation{Field: field, Message: field + " requerido"})
	}
	if len(t) > max {
		return append(out, Violation{Field: field, Message: field + " demasiado largo"})
	}
	return out
}

// 任意文字列（nilは許可、あればmax文字まで）
func CheckOptionalString(field string, v *string, max int, out []Violation) []Violation {
	if v == nil {
		return out
	}
	if len(strings.TrimSpace(*v)) > max {
		return append(out, Violation{Field: field, Message: field + " demasiado largo"})
	}
	return out
}

// 価格は正で小数2桁まで
func CheckPrice(field string, p decimal.Decimal, out []Violation) []Violation {
	if !p.IsPositive() {
		return append(out, Violation{Field: field, Message: field + " debe ser mayor que 0"})
	}
	if !p.Equal(p.Round(2)) {
		return append(out, Violation{Field: field, Message: field + " admite hasta 2 decimales"})
	}
	return out
}

// 違反リストを1つのメッセージにまとめる
func Join(vs []Violation) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Message)
	}
	return strings.Join(parts, "; ")
}
