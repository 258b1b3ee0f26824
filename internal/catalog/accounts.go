package catalog

import "github.com/SergeyBogomolovv/royal-shop/internal/entities"

var paymentAccounts = []entities.PaymentAccount{
	{Type: entities.PaymentBank, Name: "王*强", Account: "6222 0210 0123 4567 890", BankName: "中国工商银行 (北京分行)"},
	{Type: entities.PaymentBank, Name: "王*强", Account: "6217 9910 0987 6543 210", BankName: "建设银行 (上海分行)"},
	{Type: entities.PaymentAlipay, Name: "王*强", Account: "138****8888", QRCode: "https://picsum.photos/300/300?random=1"},
	{Type: entities.PaymentWechat, Name: "A00-皇冠批发-强哥", Account: "wxid_crown888", QRCode: "https://picsum.photos/300/300?random=2"},
	{Type: entities.PaymentBank, Name: "李*梅 (财务)", Account: "6228 4800 3333 4444 555", BankName: "农业银行"},
}

func PaymentAccounts() []entities.PaymentAccount {
	res := make([]entities.PaymentAccount, len(paymentAccounts))
	copy(res, paymentAccounts)
	return res
}

// AccountsFor реквизиты для выбранного способа оплаты.
func AccountsFor(method entities.PaymentMethod) []entities.PaymentAccount {
	res := make([]entities.PaymentAccount, 0)
	for _, acc := range paymentAccounts {
		if acc.Type == method {
			res = append(res, acc)
		}
	}
	return res
}
