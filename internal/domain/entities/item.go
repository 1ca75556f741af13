package entities

// Item is one line of a picklist, already projected from the VMpay
// planogram_item/good/planogram nesting.
//
// Quantidade is always > 0; zero-quantity lines never leave the aggregator.
// Canaleta (machine slot) falls back to "-" when the planogram carries no
// slot or code.
type Item struct {
	ID         string `json:"id"`
	Canaleta   string `json:"canaleta"`
	EAN        string `json:"ean"`
	Descricao  string `json:"descricao"`
	Quantidade int    `json:"quantidade"`
	ImageURL   string `json:"image_url"`
}
