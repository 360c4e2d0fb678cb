// Package cache хранит быстро меняющиеся данные корзины: содержимое, закешированный баланс кредита и
// сохраненный выбор "использовать кредит". Redis в проде, память процесса - в тестах и локально.
package cache

import "strconv"

const keyPrefix = "shopping_cart:"

func creditKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10) + ":credit"
}

func useCreditKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10) + ":usecredit"
}

func itemsKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10) + ":items"
}
