package catalog

import (
	"fmt"
	"math/rand"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	categories = []string{"皇冠", "发箍", "发梳", "耳饰套装", "森系头花"}
	adjectives = []string{"奢华", "法式", "复古", "巴洛克", "闪耀", "水晶", "手工", "宫廷"}
	nouns      = []string{"女王皇冠", "公主发冠", "新娘头饰", "水钻发带", "珍珠发箍"}
)

const (
	minCost     = 20
	costSpread  = 50
	maxStock    = 50
	minSales    = 100
	salesSpread = 5000
	imagePool   = 80
	imageBase   = 100
)

// Generate создает стартовый каталог. Цена - наценка 3x-5x к закупке.
func Generate(count int, rnd *rand.Rand) []entities.Product {
	products := make([]entities.Product, 0, count)
	for i := range count {
		category := categories[rnd.Intn(len(categories))]
		adj := adjectives[rnd.Intn(len(adjectives))]
		noun := nouns[rnd.Intn(len(nouns))]

		cost := rnd.Intn(costSpread) + minCost
		price := int(float64(cost) * (3 + rnd.Float64()*2))

		imageID := imageBase + i
		gallery := make([]string, 0, 4)
		for j := range 4 {
			gallery = append(gallery, imageURL(imageID+j))
		}

		products = append(products, entities.Product{
			ID:          fmt.Sprintf("PROD-%d", 1000+i),
			Name:        fmt.Sprintf("%s%s - %s %d款", adj, category, noun, 202500+i),
			Price:       decimal.NewFromInt(int64(price)),
			Cost:        decimal.NewFromInt(int64(cost)),
			Category:    category,
			Description: fmt.Sprintf("2025年新款%s设计，采用进口5A级水钻，纯手工镶嵌。适合婚礼、晚宴、演出等隆重场合。", adj),
			MainImage:   imageURL(imageID),
			Gallery:     gallery,
			Rating:      4.5 + rnd.Float64()*0.5,
			Sales:       rnd.Intn(salesSpread) + minSales,
			Stock:       rnd.Intn(maxStock),
		})
	}
	return products
}

func imageURL(id int) string {
	return fmt.Sprintf("https://picsum.photos/id/%d/800/800", id%imagePool+imageBase)
}
