package entity

// ProductCard карточка товара в каталоге.
type ProductCard struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cost  string `json:"cost"` // пустая строка, если товара нет в наличии
}

// HasCost сообщает, есть ли у карточки цена.
func (c ProductCard) HasCost() bool {
	return c.Cost != ""
}
