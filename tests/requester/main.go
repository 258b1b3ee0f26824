package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var client = &http.Client{Timeout: 5 * time.Second}

// Имитирует покупателей: просмотр каталога, корзина и оформление заказа.
// Корзина на сервере одна, поэтому часть оформлений получает 409.
func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(shop)
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func shop() {
	var products []struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	if err := getJSON("/products", &products); err != nil || len(products) == 0 {
		return
	}

	for range 1 + rand.Intn(3) {
		p := products[rand.Intn(len(products))]
		do(http.MethodPost, "/cart/items", map[string]string{"productId": p.ID}, "")
	}

	if rand.Intn(3) == 0 {
		do(http.MethodDelete, "/cart", nil, "")
		return
	}

	methods := []string{"bank", "alipay", "wechat"}
	do(http.MethodPost, "/checkout", map[string]string{
		"name":          fmt.Sprintf("顾客%d", rand.Intn(1000)),
		"phone":         fmt.Sprintf("138%08d", rand.Intn(100000000)),
		"address":       fmt.Sprintf("上海市 %d号", rand.Intn(500)),
		"paymentMethod": methods[rand.Intn(len(methods))],
	}, fmt.Sprintf("key-%d", rand.Intn(50)))
}

func getJSON(path string, v any) error {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

func do(method, path string, body any, idempotencyKey string) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	resp.Body.Close()
	fmt.Println(method, path, "->", resp.Status)
}
