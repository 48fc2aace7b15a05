package value

// Unit токен единицы измерения в том виде, в каком он встречается в названии товара.
type Unit string

const (
	UnitMilligram  Unit = "мг"
	UnitGram       Unit = "г"
	UnitKilogram   Unit = "кг"
	UnitMilliliter Unit = "мл"
	UnitLiter      Unit = "л"
	UnitPiece      Unit = "шт"
	UnitRoll       Unit = "рулон"
	UnitPair       Unit = "пара"
)

func (u Unit) String() string {
	return string(u)
}
