package util

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID 生成一个不带中划线的请求 ID
func GenerateRequestID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// IsValidRequestID 校验客户端透传的 X-Request-ID，仅接受合法 UUID（带或不带中划线）
func IsValidRequestID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}
