package entities

type PaymentMethod string

const (
	PaymentBank   PaymentMethod = "bank"
	PaymentAlipay PaymentMethod = "alipay"
	PaymentWechat PaymentMethod = "wechat"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentBank, PaymentAlipay, PaymentWechat:
		return true
	}
	return false
}

// PaymentAccount реквизиты, на которые покупатель переводит деньги вручную.
type PaymentAccount struct {
	Type     PaymentMethod
	Name     string
	Account  string
	BankName string
	QRCode   string
}
