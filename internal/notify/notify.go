package notify

import (
	"context"
	"errors"
	"fmt"
)

type Kind string

const (
	KindOrderCreated Kind = "ORDER_CREATED"
	KindOrderShipped Kind = "ORDER_SHIPPED"
)

var (
	ErrUnknownKind  = errors.New("unknown notification kind")
	ErrNotDelivered = errors.New("notification not delivered")
)

// Sender доставляет уведомление покупателю. Возвращает false,
// если шлюз принял запрос, но не доставил сообщение.
type Sender interface {
	Send(ctx context.Context, phone string, kind Kind, params map[string]string) (bool, error)
}

// Render текст SMS по шаблону вида уведомления.
func Render(kind Kind, params map[string]string) (string, error) {
	switch kind {
	case KindOrderCreated:
		return fmt.Sprintf("【RoyalCrown】尊贵的顾客，您的订单 %s 已提交成功。请尽快完成转账以便发货。", params["orderId"]), nil
	case KindOrderShipped:
		return fmt.Sprintf("【RoyalCrown】您的宝贝已发货！快递单号：%s，请注意查收。", params["tracking"]), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
