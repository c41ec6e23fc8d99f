package cache

import "fmt"

func ProductKey(productId string) string {
	return fmt.Sprintf("product:%s", productId)
}

func ReviewsKey(productId string) string {
	return fmt.Sprintf("product:%s:reviews", productId)
}

func OrderKey(userId int64) string {
	return fmt.Sprintf("order:%d", userId)
}

func UserKey(userId int64) string {
	return fmt.Sprintf("user:%d", userId)
}

func ShoppingCartKey(userId int64) string {
	return fmt.Sprintf("cart:%d", userId)
}
