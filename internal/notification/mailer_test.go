package notification_test

import (
	"strings"
	"testing"

	"tienda/internal/notification"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := string(notification.BuildMessage(
		"tienda@only.com",
		"ana@example.com",
		"Confirmación de pedido",
		"Tu pedido #42 fue recibido. Total: 30.00",
	))

	assert.True(t, strings.HasPrefix(msg, "From: tienda@only.com\r\n"))
	assert.Contains(t, msg, "To: ana@example.com\r\n")
	assert.Contains(t, msg, "Subject: Confirmación de pedido\r\n")
	assert.Contains(t, msg, "charset=utf-8")

	//ヘッダーと本文は空行で区切る
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	assert.Len(t, parts, 2)
	assert.Equal(t, "Tu pedido #42 fue recibido. Total: 30.00\r\n", parts[1])
}
